package decoder

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestDecode_MalformedToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"no dots", "abc"},
		{"one dot", "abc.def"},
		{"three dots", "a.b.c.d"},
		{"plain sentence", "not a token at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("Decode(%q) error = %v, want *DecodeError", tt.token, err)
			}
			if decErr.Kind != ErrMalformedToken {
				t.Errorf("Decode(%q) kind = %v, want ErrMalformedToken", tt.token, decErr.Kind)
			}
		})
	}
}

func TestDecode_InvalidEncoding(t *testing.T) {
	// '!' is outside the base64url alphabet
	_, err := Decode("!!!.eyJzdWIiOiIxMjMifQ.sig")
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if decErr.Kind != ErrInvalidEncoding {
		t.Errorf("kind = %v, want ErrInvalidEncoding", decErr.Kind)
	}
	if decErr.Segment != 0 {
		t.Errorf("segment = %d, want 0 (header)", decErr.Segment)
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`))
	notJSON := base64.RawURLEncoding.EncodeToString([]byte(`this is not json`))

	_, err := Decode(header + "." + notJSON + ".")
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if decErr.Kind != ErrInvalidJSON {
		t.Errorf("kind = %v, want ErrInvalidJSON", decErr.Kind)
	}
	if decErr.Segment != 1 {
		t.Errorf("segment = %d, want 1 (payload)", decErr.Segment)
	}
}

func TestDecode_UnsecuredToken(t *testing.T) {
	// alg "none" token with an empty signature segment still decodes
	d, err := Decode("eyJhbGciOiJub25lIn0.eyJzdWIiOiIxMjMifQ.")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	if d.Algorithm != "none" {
		t.Errorf("Algorithm = %q, want %q", d.Algorithm, "none")
	}
	if got := d.Claims["sub"]; got != "123" {
		t.Errorf("Claims[sub] = %v, want %q", got, "123")
	}
	if len(d.SignatureRaw) != 0 {
		t.Errorf("SignatureRaw = %v, want empty", d.SignatureRaw)
	}
}

func TestDecode_PaddedSegments(t *testing.T) {
	header := base64.URLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.URLEncoding.EncodeToString([]byte(`{"sub":"abc"}`))

	d, err := Decode(header + "." + payload + ".c2ln")
	if err != nil {
		t.Fatalf("Decode returned error for padded segments: %v", err)
	}
	if d.Header["typ"] != "JWT" {
		t.Errorf("Header[typ] = %v, want JWT", d.Header["typ"])
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	header := map[string]interface{}{"alg": "HS256", "typ": "JWT", "kid": "key-1"}
	claims := map[string]interface{}{
		"sub":   "1234567890",
		"name":  "John Doe",
		"admin": true,
		"iat":   float64(1516239022),
	}

	hb, _ := json.Marshal(header)
	cb, _ := json.Marshal(claims)
	token := base64.RawURLEncoding.EncodeToString(hb) + "." +
		base64.RawURLEncoding.EncodeToString(cb) + ".c2lnbmF0dXJl"

	d, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	if !reflect.DeepEqual(d.Header, header) {
		t.Errorf("Header = %v, want %v", d.Header, header)
	}
	if !reflect.DeepEqual(d.Claims, claims) {
		t.Errorf("Claims = %v, want %v", d.Claims, claims)
	}
	if string(d.SignatureRaw) != "signature" {
		t.Errorf("SignatureRaw = %q, want %q", d.SignatureRaw, "signature")
	}
}

func TestDecode_SigningInputMatchesRawSegments(t *testing.T) {
	token := "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0.c2ln"
	d, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	want := "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0"
	if d.SigningInput != want {
		t.Errorf("SigningInput = %q, want %q", d.SigningInput, want)
	}
}

func TestDecode_MissingAlg(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{}`))

	d, err := Decode(header + "." + payload + ".")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if d.Algorithm != "" {
		t.Errorf("Algorithm = %q, want empty", d.Algorithm)
	}
}

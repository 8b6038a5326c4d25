package decoder

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorKind classifies decode failures so the UI can render them distinctly
type ErrorKind int

const (
	// ErrMalformedToken means the input does not have the header.payload.signature shape
	ErrMalformedToken ErrorKind = iota
	// ErrInvalidEncoding means a segment is not valid base64url
	ErrInvalidEncoding
	// ErrInvalidJSON means a decoded segment is not a JSON object
	ErrInvalidJSON
)

// segment names used in error messages
var segmentNames = [...]string{"header", "payload", "signature"}

// DecodeError is a structural decode failure. It is always recoverable:
// callers surface Message to the user and keep running.
type DecodeError struct {
	Kind    ErrorKind
	Segment int // 0-based segment index, -1 when not segment-specific
	Err     error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case ErrMalformedToken:
		return "malformed token: expected 3 dot-separated segments"
	case ErrInvalidEncoding:
		return fmt.Sprintf("invalid base64url encoding in %s segment: %v", segmentNames[e.Segment], e.Err)
	case ErrInvalidJSON:
		return fmt.Sprintf("invalid JSON in %s segment: %v", segmentNames[e.Segment], e.Err)
	}
	return "decode error"
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decoded holds the structural parts of a token. Decoding is purely
// structural: no signature or expiry checking happens here.
type Decoded struct {
	Header       map[string]interface{}
	Claims       map[string]interface{}
	SignatureRaw []byte
	// SigningInput is "segment1.segment2" exactly as it appeared in the
	// token, the bytes an HMAC is computed over.
	SigningInput string
	// Algorithm is the header "alg" value, empty when absent or not a string
	Algorithm string
}

// Decode splits a compact JWT into its three segments and parses the header
// and claims. The signature segment is decoded to raw bytes only.
func Decode(token string) (*Decoded, error) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) != 3 {
		return nil, &DecodeError{Kind: ErrMalformedToken, Segment: -1}
	}

	headerBytes, err := decodeSegment(parts[0])
	if err != nil {
		return nil, &DecodeError{Kind: ErrInvalidEncoding, Segment: 0, Err: err}
	}
	claimBytes, err := decodeSegment(parts[1])
	if err != nil {
		return nil, &DecodeError{Kind: ErrInvalidEncoding, Segment: 1, Err: err}
	}
	signature, err := decodeSegment(parts[2])
	if err != nil {
		return nil, &DecodeError{Kind: ErrInvalidEncoding, Segment: 2, Err: err}
	}

	var header map[string]interface{}
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, &DecodeError{Kind: ErrInvalidJSON, Segment: 0, Err: err}
	}
	var claims map[string]interface{}
	if err := json.Unmarshal(claimBytes, &claims); err != nil {
		return nil, &DecodeError{Kind: ErrInvalidJSON, Segment: 1, Err: err}
	}

	alg, _ := header["alg"].(string)

	return &Decoded{
		Header:       header,
		Claims:       claims,
		SignatureRaw: signature,
		SigningInput: parts[0] + "." + parts[1],
		Algorithm:    alg,
	}, nil
}

// decodeSegment decodes a base64url segment, tolerating both padded and
// unpadded input (RFC 7515 mandates no padding, but tokens in the wild
// carry it anyway).
func decodeSegment(seg string) ([]byte, error) {
	if strings.ContainsRune(seg, '=') {
		return base64.URLEncoding.DecodeString(seg)
	}
	return base64.RawURLEncoding.DecodeString(seg)
}

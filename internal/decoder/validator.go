package decoder

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validity is the outcome of cryptographic validation, kept separate from
// structural decoding: an invalid or expired signature still leaves the
// header and claims fully viewable.
type Validity int

const (
	// Unverified means no secret was supplied, so no check was attempted
	Unverified Validity = iota
	// Valid means the signature matched and the token is not expired
	Valid
	// InvalidSignature means the recomputed MAC did not match
	InvalidSignature
	// Expired means the signature matched but the exp claim is in the past
	Expired
	// UnsupportedAlgorithm means the header alg is outside the HMAC-SHA family
	UnsupportedAlgorithm
)

func (v Validity) String() string {
	switch v {
	case Unverified:
		return "unverified"
	case Valid:
		return "valid"
	case InvalidSignature:
		return "invalid signature"
	case Expired:
		return "expired"
	case UnsupportedAlgorithm:
		return "unsupported algorithm"
	}
	return "unknown"
}

// Result pairs a structurally decoded token with its validation outcome.
// It is immutable once built; both the stdout formatter and the TUI read it.
type Result struct {
	*Decoded
	Validity Validity
}

// supportedMethods maps header alg values to the HMAC signing methods we can
// verify. Verification for other families (RSA, ECDSA) would need key
// material the CLI does not accept.
var supportedMethods = map[string]*jwt.SigningMethodHMAC{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// Validate checks d's signature against secret and its exp claim against now.
// An empty secret skips validation entirely and yields Unverified.
// The HMAC comparison inside jwt/v5 is constant-time (hmac.Equal).
func Validate(d *Decoded, secret string, now time.Time) Validity {
	if secret == "" {
		return Unverified
	}

	method, ok := supportedMethods[d.Algorithm]
	if !ok {
		return UnsupportedAlgorithm
	}

	if err := method.Verify(d.SigningInput, d.SignatureRaw, []byte(secret)); err != nil {
		return InvalidSignature
	}

	if exp, ok := numericClaim(d.Claims, "exp"); ok {
		if now.Unix() >= int64(exp) {
			return Expired
		}
	}
	return Valid
}

// DecodeAndValidate is the one-call path used by both the stdout mode and
// the TUI's commit action.
func DecodeAndValidate(token, secret string, now time.Time) (*Result, error) {
	d, err := Decode(token)
	if err != nil {
		return nil, err
	}
	return &Result{Decoded: d, Validity: Validate(d, secret, now)}, nil
}

// numericClaim reads a claim as a float64. JSON numbers unmarshal to float64
// via map[string]interface{}; anything else (string exp, missing claim) is
// treated as absent.
func numericClaim(claims map[string]interface{}, name string) (float64, bool) {
	v, ok := claims[name]
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return n, ok
}

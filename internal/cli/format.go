package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studiowebux/jwtui/internal/decoder"
)

// jsonOutput is the stdout JSON shape. SignatureValid is a tri-state:
// nil when no secret was supplied, otherwise whether the MAC matched.
type jsonOutput struct {
	Algorithm      string                 `json:"algorithm"`
	Header         map[string]interface{} `json:"header"`
	Payload        map[string]interface{} `json:"payload"`
	SignatureValid *bool                  `json:"signature_valid"`
}

// FormatJSON renders a decode result as a single JSON object. Map keys are
// emitted sorted by encoding/json, so output is deterministic for a given
// result.
func FormatJSON(result *decoder.Result) (string, error) {
	out := jsonOutput{
		Algorithm: result.Algorithm,
		Header:    result.Header,
		Payload:   result.Claims,
	}
	if result.Validity != decoder.Unverified {
		valid := signatureMatched(result.Validity)
		out.SignatureValid = &valid
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal output: %w", err)
	}
	return string(data), nil
}

// FormatErrorJSON renders a decode failure in the same single-object shape
// used for successful output.
func FormatErrorJSON(err error) string {
	data, mErr := json.Marshal(map[string]string{"error": err.Error()})
	if mErr != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}

// FormatText renders a decode result as a human-readable block: algorithm,
// validity, then pretty-printed header and claims.
func FormatText(result *decoder.Result) string {
	var b strings.Builder

	alg := result.Algorithm
	if alg == "" {
		alg = "(none)"
	}
	fmt.Fprintf(&b, "Algorithm: %s\n", alg)
	fmt.Fprintf(&b, "Validity:  %s\n", result.Validity)
	b.WriteString("\nHeader:\n")
	b.WriteString(prettyJSON(result.Header))
	b.WriteString("\n\nPayload:\n")
	b.WriteString(prettyJSON(result.Claims))

	return b.String()
}

// signatureMatched reports whether the MAC check itself passed. An expired
// token still carries a correct signature.
func signatureMatched(v decoder.Validity) bool {
	return v == decoder.Valid || v == decoder.Expired
}

// prettyJSON pretty-prints a JSON object with sorted keys
func prettyJSON(m map[string]interface{}) string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", m)
	}
	return string(data)
}

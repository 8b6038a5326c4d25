package cli

import (
	"fmt"
	"time"

	"github.com/studiowebux/jwtui/internal/decoder"
)

// RunOptions contains options for decoding a token in stdout mode
type RunOptions struct {
	Token  string
	Secret string
	AsJSON bool
}

// Run decodes opts.Token, validates it against opts.Secret and prints the
// outcome to stdout. Decode failures are printed as content, not returned:
// an invalid token is a result, not a process failure.
func Run(opts RunOptions) error {
	result, err := decoder.DecodeAndValidate(opts.Token, opts.Secret, time.Now())
	if err != nil {
		if opts.AsJSON {
			fmt.Println(FormatErrorJSON(err))
		} else {
			fmt.Println(err.Error())
		}
		return nil
	}

	if opts.AsJSON {
		out, err := FormatJSON(result)
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		fmt.Println(out)
	} else {
		fmt.Println(FormatText(result))
	}
	return nil
}

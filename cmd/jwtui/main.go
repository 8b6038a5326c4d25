package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/studiowebux/jwtui/internal/cli"
	"github.com/studiowebux/jwtui/internal/tui"
)

var (
	version = "0.1.0"
)

const banner = `
     ██╗██╗    ██╗████████╗    ██╗   ██╗██╗
     ██║██║    ██║╚══██╔══╝    ██║   ██║██║
     ██║██║ █╗ ██║   ██║       ██║   ██║██║
██   ██║██║███╗██║   ██║       ██║   ██║██║
╚█████╔╝╚███╔███╔╝   ██║       ╚██████╔╝██║
 ╚════╝  ╚══╝╚══╝    ╚═╝        ╚═════╝ ╚═╝
`

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jwtui [token]",
	Short: "JWT UI - decode and verify JSON Web Tokens in the terminal",
	Long: banner + `
JWT UI decodes JSON Web Tokens and shows the header, payload and signature
validity, either in an interactive terminal UI or directly on stdout.

Run without arguments to start the TUI, or provide a token to decode it.
Pass a secret with -S to verify HMAC (HS256/HS384/HS512) signatures.

Examples:
  jwtui                                # Start interactive TUI
  jwtui <token>                        # Open TUI with the token decoded
  jwtui <token> -s                     # Print decoded token to stdout
  jwtui <token> -s -j                  # Same, formatted as JSON
  jwtui <token> -s -S mysecret         # Verify signature with a secret
  jwtui --help                         # Show help`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Reject a bad tick rate before any terminal resource is acquired
		if err := validateTickRate(flagTickRate); err != nil {
			return err
		}

		var token string
		if len(args) > 0 {
			token = args[0]
		}

		// Stdout mode needs a token; without one, fall through to the TUI
		if flagStdout && token != "" {
			return cli.Run(cli.RunOptions{
				Token:  token,
				Secret: flagSecret,
				AsJSON: flagJSON,
			})
		}

		return tui.Run(tui.Options{
			Token:    token,
			Secret:   flagSecret,
			TickRate: time.Duration(flagTickRate) * time.Millisecond,
			Light:    flagLight,
		})
	},
}

// validateTickRate rejects tick rates the event loop cannot honor. Anything
// at or above a second would make the UI feel frozen; zero or negative would
// make the tick timer spin.
func validateTickRate(ms int) error {
	if ms <= 0 || ms >= 1000 {
		return fmt.Errorf("tick rate must be between 1 and 999 milliseconds, got %d", ms)
	}
	return nil
}

var (
	flagStdout   bool
	flagJSON     bool
	flagTickRate int
	flagSecret   string
	flagLight    bool
)

func init() {
	rootCmd.Flags().BoolVarP(&flagStdout, "stdout", "s", false, "Print the decoded token to stdout instead of starting the TUI")
	rootCmd.Flags().BoolVarP(&flagJSON, "json", "j", false, "Format stdout output as JSON")
	rootCmd.Flags().IntVarP(&flagTickRate, "tick-rate", "t", 250, "Tick rate in milliseconds; lower means higher FPS, must be below 1000")
	rootCmd.Flags().StringVarP(&flagSecret, "secret", "S", "", "Secret for verifying HMAC-signed tokens")
	rootCmd.Flags().BoolVar(&flagLight, "light", false, "Use colors suited for light terminal backgrounds")
}

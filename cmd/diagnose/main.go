// Command diagnose checks the Square sandbox credentials and a running
// bridge's webhook end to end.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "diagnose: connection checks for the voice ordering bridge",
	Long: `diagnose verifies the pieces the voice ordering bridge depends on.

  diagnose square                       # list catalog items, search one order
  diagnose webhook --url https://x.app  # fetch /menu and post a mock place_order`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; flags and the environment still apply
		_ = godotenv.Load()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

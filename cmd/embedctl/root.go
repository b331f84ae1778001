package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "embedctl",
	Short: "Inspect and exercise embedkit codecs from the command line",
	Long: `embedctl is a developer tool around the embedkit firmware utility
library. It encodes and decodes wire integers and hex strings, computes
CRC-8 checksums, draws from the deterministic fast PRNG, and formats
hardware addresses — using exactly the code paths devices run.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		initLogger(verbose)
	}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints a result line unless quiet mode is on.
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func main() {
	execute()
}

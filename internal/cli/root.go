package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "polyglot",
	Short: "Comprehensible output progress dashboard",
	Long: `polyglot shows how many phrases you have collected per target language.

Browse the dashboard in a browser with "polyglot serve", in the terminal
with "polyglot tui", or print the numbers with "polyglot stats".`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

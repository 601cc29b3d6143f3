package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/polyglot/internal/dashboard"
	"github.com/emiliopalmerini/polyglot/internal/domain"
	"github.com/emiliopalmerini/polyglot/internal/util"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show phrase statistics",
	Long: `Show the dashboard metrics and the per-language breakdown.

Examples:
  polyglot stats         # Human readable
  polyglot stats --json  # Same shape as GET /api/stats`,
	RunE: runStats,
}

var statsJSON bool

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := NewAppContext(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	stats := a.Service.Stats()
	out := cmd.OutOrStdout()

	if statsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	printStats(out, stats)
	return nil
}

func printStats(w io.Writer, stats dashboard.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Polyglot Stats\n")
	fmt.Fprintf(w, "  ==============\n")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Total phrases:     %s\n", util.FormatNumber(stats.Total))
	fmt.Fprintf(w, "  Languages:         %d\n", stats.Languages)
	fmt.Fprintf(w, "  Top language:      %s\n", stats.TopLanguage)
	fmt.Fprintf(w, "  Active days:       %d\n", stats.ActiveDays)
	fmt.Fprintln(w)

	if len(stats.Summaries) == 0 {
		fmt.Fprintf(w, "  No phrases yet.\n")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "  By Language\n")
	fmt.Fprintf(w, "  -----------\n")
	for _, s := range domain.RankLanguages(stats.Summaries) {
		fmt.Fprintf(w, "  %-12s %-4s %4d  %4s\n", s.Name, s.Code, s.Count, util.FormatShare(s.Count, stats.Total))
	}
	fmt.Fprintln(w)
}

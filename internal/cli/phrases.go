package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/polyglot/internal/domain"
	"github.com/emiliopalmerini/polyglot/internal/viewstate"
)

var phrasesCmd = &cobra.Command{
	Use:   "phrases",
	Short: "List collected phrases",
	Long: `List phrases, optionally restricted to one target language.

Examples:
  polyglot phrases            # Every phrase
  polyglot phrases --lang fr  # French phrases only`,
	RunE: runPhrases,
}

var phrasesLang string

func init() {
	rootCmd.AddCommand(phrasesCmd)
	phrasesCmd.Flags().StringVarP(&phrasesLang, "lang", "l", domain.AllLanguages, "Language code, or \"all\"")
}

func runPhrases(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := NewAppContext(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	state := viewstate.New()
	if err := a.Service.SelectLanguage(state, phrasesLang); err != nil {
		return fmt.Errorf("invalid --lang: %w", err)
	}

	model := a.Service.Build(state)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s (%d)\n", model.ExplorerTitle, len(model.Phrases))
	fmt.Fprintln(out)
	for _, p := range model.Phrases {
		fmt.Fprintf(out, "  [%s] %s -> %s\n", p.Badge, p.Source, p.Target)
	}
	if len(model.Phrases) == 0 {
		fmt.Fprintf(out, "  No phrases.\n")
	}
	fmt.Fprintln(out)
	return nil
}

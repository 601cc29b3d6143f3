package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/polyglot/internal/app/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the dashboard in the terminal",
	Long: `Open the interactive terminal dashboard.

Keys:
  tab, l, →        next language
  shift+tab, h, ←  previous language
  a                all languages
  j/k, ↓/↑         move through phrases
  enter, space     select phrase
  ?                show all keys
  q                quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := NewAppContext(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	p := tea.NewProgram(tui.NewApp(a.Service, a.Exporter), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

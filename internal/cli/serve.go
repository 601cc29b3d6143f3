package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/polyglot/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the web dashboard server.

The listen address comes from POLYGLOT_ADDR (default :8080) unless --port is given.

Examples:
  polyglot serve              # Start on the configured address
  polyglot serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides POLYGLOT_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := NewAppContext(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	a.Config.Addr = listenAddr(a.Config.Addr, servePort, cmd.Flags().Changed("port"))

	return app.Run(ctx, a.Config, a.Service, a.Exporter, a.Log)
}

// listenAddr returns the configured address unless --port was given.
func listenAddr(configured string, port int, portSet bool) string {
	if !portSet {
		return configured
	}
	return fmt.Sprintf(":%d", port)
}

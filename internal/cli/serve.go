package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gosunspot/dashboard"
	"github.com/sartorproj/gosunspot/internal/logging"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the sunspot dashboard",
		Long: `Load the sunspot file and serve the interactive dashboard.

The page shows a live solar image, the sunspot record folded onto a
chosen cycle length, and the monthly average with its moving average.`,
		Example: `  # Serve on the configured port (default 8050)
  sunspots serve

  # Serve another file on a custom port
  sunspots serve --data data/SN_m_tot_V2.0.csv --port 9000`,
		RunE: runServe,
	}

	cmd.Flags().Int("port", 0, "Port to serve on (default: 8050)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := getConfig(ctx)
	logger := logging.FromContext(ctx)

	series, err := loadSeries(ctx)
	if err != nil {
		return err
	}

	server := dashboard.NewServer(dashboard.ServerConfig{
		Dashboard: dashboard.New(series, logger),
		Port:      cfg.Port,
		Logger:    logger,
	})

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving %d observations on http://localhost:%d\n", series.Len(), cfg.Port)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	return server.Serve(ctx)
}

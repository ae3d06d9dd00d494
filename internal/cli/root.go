// Package cli provides the command-line interface for the sunspot dashboard.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gosunspot/internal/config"
	"github.com/sartorproj/gosunspot/internal/logging"
	"github.com/sartorproj/gosunspot/timeseries"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sunspots",
		Short: "Sunspot dashboard and analysis tools",
		Long: `sunspots serves an interactive dashboard over the SILSO monthly
sunspot record and exposes the same computations on the command line:
moving-average smoothing, cycle folding and cycle-length estimation.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help, completion and version
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = logging.WithContext(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./sunspots.yaml)")
	flags.String("data", "", "Path to the SILSO monthly sunspot file (default: "+config.DefaultDataPath+")")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.String("log-format", "", "Log format (text|json)")
	flags.StringP("output", "o", "", "Output format (table|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{FormatTable, FormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newSmoothCommand())
	rootCmd.AddCommand(newFoldCommand())
	rootCmd.AddCommand(newCycleCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newVersionCommand(Version, GitCommit))

	return rootCmd
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// getConfig retrieves the config from the command context.
func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		DataPath:  config.DefaultDataPath,
		Port:      config.DefaultPort,
		LogLevel:  config.DefaultLogLevel,
		LogFormat: config.DefaultLogFormat,
		Output:    config.DefaultOutput,
	}
}

func getRenderer(cmd *cobra.Command) *renderer {
	return newRenderer(cmd.OutOrStdout(), getConfig(cmd.Context()).Output)
}

// loadSeries reads the configured sunspot file.
func loadSeries(ctx context.Context) (*timeseries.Series, error) {
	cfg := getConfig(ctx)
	logger := logging.FromContext(ctx)

	series, err := timeseries.Load(cfg.DataPath, timeseries.DefaultCSVOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.DataPath, err)
	}

	logger.Debug("loaded series", "path", cfg.DataPath, "rows", series.Len())
	return series, nil
}

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"draftline/internal/config"
	"draftline/internal/logging"
)

const appVersion = "dev"

var configPath *string

var rootCmd = &cobra.Command{
	Use:   "draftline",
	Short: "draftline collects fantasy football roster, draft, and performance data into versioned JSON artifacts.",
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "", "Path to a JSON5 config file. Defaults to $CONFIG_FILE.")
	rootCmd.SilenceUsage = true
}

// ExecuteContext runs the CLI. Errors exit nonzero; a rejected (red) run
// surfaces as an error from its subcommand.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if *configPath != "" {
		return config.LoadFrom(*configPath)
	}
	return config.Load()
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "draftline",
		Version: appVersion,
	})
}

package cmds

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"customer-service/internal/config"

	"github.com/spf13/cobra"
)

const envFileFlag = "env-file"

// NewRootCommand returns the customer-service root command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "customer-service",
		Short:         "HTTP service for managing customer records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String(envFileFlag, ".env", "dotenv file loaded before reading the environment")

	return cmd
}

// loadConfig loads the env file named by --env-file and then the configuration
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, err := cmd.Flags().GetString(envFileFlag)
	if err != nil {
		return nil, err
	}

	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

// NewLogger builds the process logger from the logging configuration
func NewLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With("service", "customer-service")
}

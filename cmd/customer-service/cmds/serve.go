package cmds

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"customer-service/internal/server"

	"github.com/spf13/cobra"
)

// GetServeCommand returns the command that runs the HTTP API
func GetServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the customer HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := NewLogger(cfg.Logging, os.Stdout)
			slog.SetDefault(logger)

			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}
}

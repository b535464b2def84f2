package cmds

import (
	"fmt"
	"log/slog"
	"os"

	"customer-service/internal/config"
	"customer-service/internal/database"

	"github.com/spf13/cobra"
)

// GetMigrateCommand returns the command that applies the sqlite schema and reports its version
func GetMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the customer table migrations to DATABASE_DSN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if cfg.Store.Backend != config.BackendSQLite {
				return fmt.Errorf("migrate requires STORE_BACKEND=%s, got %q", config.BackendSQLite, cfg.Store.Backend)
			}

			slog.SetDefault(NewLogger(cfg.Logging, os.Stderr))

			db, err := database.Initialize(&cfg.Store)
			if err != nil {
				return err
			}
			defer db.Close()

			sqlDB, err := db.DB.DB()
			if err != nil {
				return fmt.Errorf("failed to get sql.DB: %w", err)
			}

			version, dirty, err := database.NewMigrationRunner(sqlDB).GetMigrationStatus()
			if err != nil {
				return fmt.Errorf("failed to read migration status: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}
}

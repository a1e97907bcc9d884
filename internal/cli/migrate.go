// filepath: internal/cli/migrate.go
package cli

import (
	"fmt"
	"moviecatalog/internal/config"
	"moviecatalog/internal/logging"
	"moviecatalog/internal/repository"
	"moviecatalog/internal/shared"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration tools",
	Long:  `Manage database schema versions. Use subcommands 'up', 'down', or 'status'.`,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Migrate the database to the most recent version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(cfg, "up")
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the database by one version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(cfg, "down")
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Dump the migration status for the current DB",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(cfg, "status")
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(upCmd)
	migrateCmd.AddCommand(downCmd)
	migrateCmd.AddCommand(statusCmd)
}

// migrationLockPath is the sidecar file serializing migrations on one database.
func migrationLockPath(c *config.Config) string {
	return c.Database.Path + ".lock"
}

func runMigration(c *config.Config, command string) error {
	lock := flock.New(migrationLockPath(c))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("%s: %w", lock.Path(), shared.ErrorLocked)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logging.Log.Warnf("Failed to release migration lock: %v", err)
		}
	}()

	repo, err := repository.NewRepository(c)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	logging.Log.Infof("Running migration command: %s", command)
	if err := repo.Migrate(command); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logging.Log.Info("Migration operation completed successfully.")
	return nil
}

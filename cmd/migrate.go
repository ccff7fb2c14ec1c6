package cmd

import (
	"fmt"

	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	for _, direction := range []database.MigrateDirection{database.MigrateUp, database.MigrateDown, database.MigrateStatus} {
		migrateCmd.AddCommand(&cobra.Command{
			Use:   string(direction),
			Short: fmt.Sprintf("Run goose %s against the configured database", direction),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				config, err := utils.LoadConfig()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				return database.Migrate(cmd.Context(), config.Database, direction)
			},
		})
	}

	return migrateCmd
}

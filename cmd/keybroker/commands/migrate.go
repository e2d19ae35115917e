package commands

import (
	"github.com/spf13/cobra"

	"keybroker/internal/prekey/repository"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the prekey tables and indexes if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repository.CreateSchema(cmd.Context(), appCtx.db); err != nil {
				return err
			}
			appCtx.logger.Info("schema up to date")
			return nil
		},
	}
}

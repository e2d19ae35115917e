package commands

import (
	"github.com/spf13/cobra"

	"keybroker/internal/prekey"
)

type statusOutput struct {
	Status         *prekey.KeyStatusDTO `json:"status"`
	NeedsReplenish bool                 `json:"needs_replenish"`
}

func statusCmd() *cobra.Command {
	var threshold int
	cmd := &cobra.Command{
		Use:   "status [user-id]",
		Short: "Print identity, signed prekey and one-time prekey counts for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			status, err := appCtx.prekeys.GetKeyStatus(ctx, userID)
			if err != nil {
				return err
			}
			counts, err := appCtx.prekeys.GetOneTimePreKeyCount(ctx, userID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), statusOutput{
				Status:         status,
				NeedsReplenish: counts.NeedsReplenish(threshold),
			})
		},
	}
	cmd.Flags().IntVar(&threshold, "replenish-below", 20, "report needs_replenish when fewer unused one-time prekeys remain")
	return cmd
}

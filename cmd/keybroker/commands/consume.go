package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func consumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consume [user-id]",
		Short: "Consume the oldest unused one-time prekey of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			key, err := appCtx.prekeys.ConsumeOneTimePreKey(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if key == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "No unused one-time prekeys")
				return nil
			}
			return printJSON(cmd.OutOrStdout(), key)
		},
	}
}

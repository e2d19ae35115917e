package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func markUsedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-used [user-id] [key-id]",
		Short: "Mark a one-time prekey as used",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			keyID, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid key id %q: %w", args[1], err)
			}
			if err := appCtx.prekeys.MarkOneTimePreKeyUsed(cmd.Context(), userID, uint32(keyID)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "One-time prekey %d marked used\n", keyID)
			return nil
		},
	}
}

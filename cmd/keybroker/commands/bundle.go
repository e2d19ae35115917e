package commands

import (
	"github.com/spf13/cobra"
)

func bundleCmd() *cobra.Command {
	var noOneTime bool
	cmd := &cobra.Command{
		Use:   "bundle [user-id]",
		Short: "Fetch the key bundle for a user",
		Long: "Fetch the identity key, current signed prekey and, unless --no-one-time is set,\n" +
			"one one-time prekey for a user. The one-time prekey is consumed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			bundle, err := appCtx.prekeys.GetKeyBundle(cmd.Context(), userID, !noOneTime)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), bundle)
		},
	}
	cmd.Flags().BoolVar(&noOneTime, "no-one-time", false, "do not consume a one-time prekey")
	return cmd
}

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keybroker/internal/prekey"
	"keybroker/internal/prekey/usecase"
	appErrors "keybroker/pkg/errors"
)

func publishCmd() *cobra.Command {
	var (
		file       string
		rotateFrom int64
	)
	cmd := &cobra.Command{
		Use:   "publish [user-id]",
		Short: "Publish the public keys of a keygen file for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()
			kf, err := readKeyFile(f)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			uc := appCtx.prekeys

			_, err = uc.CreateIdentityKey(ctx, userID, prekey.CreateIdentityKeyCommand{PublicKey: kf.Identity.Public})
			switch {
			case errors.Is(err, appErrors.ErrIdentityKeyExists):
				// Re-publishing is fine as long as the identity matches.
				stored, err := uc.GetIdentityKey(ctx, userID)
				if err != nil {
					return err
				}
				if stored.PublicKey != kf.Identity.Public {
					return fmt.Errorf("user %s already has a different identity key", userID)
				}
			case err != nil:
				return err
			}

			var spk *prekey.SignedPreKeyDTO
			if cmd.Flags().Changed("rotate-from") {
				if rotateFrom < 0 || rotateFrom > int64(^uint32(0)) {
					return fmt.Errorf("--rotate-from out of range: %d", rotateFrom)
				}
				old := uint32(rotateFrom)
				spk, err = uc.RotateSignedPreKey(ctx, userID, prekey.RotateSignedPreKeyCommand{
					OldKeyID:                  &old,
					UploadSignedPreKeyCommand: kf.signedPreKeyCommand(),
				})
			} else {
				spk, err = uc.UploadSignedPreKey(ctx, userID, kf.signedPreKeyCommand())
			}
			if err != nil {
				return err
			}

			uploaded := 0
			for _, batch := range kf.oneTimePreKeyBatches(usecase.MaxOneTimePreKeyBatch) {
				if err := uc.UploadOneTimePreKeys(ctx, userID, batch); err != nil {
					return fmt.Errorf("after %d one-time prekeys: %w", uploaded, err)
				}
				uploaded += len(batch.Keys)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Published signed prekey %d and %d one-time prekeys for %s\n",
				spk.KeyID, uploaded, userID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "key file written by keygen")
	cmd.Flags().Int64Var(&rotateFrom, "rotate-from", 0, "retire this signed prekey id in the same step")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

package commands

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	var (
		out         string
		count       int
		signedKeyID uint32
		firstID     uint32
	)
	cmd := &cobra.Command{
		Use:         "keygen",
		Short:       "Generate an identity key, a signed prekey and one-time prekeys",
		Annotations: map[string]string{offline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--one-time must not be negative")
			}
			kf, err := generateKeyFile(rand.Reader, signedKeyID, firstID, count)
			if err != nil {
				return err
			}
			if out == "" {
				return printJSON(cmd.OutOrStdout(), kf)
			}

			f, err := os.OpenFile(out, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
			if err != nil {
				return err
			}
			defer f.Close()
			return printJSON(f, kf)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the key file here instead of stdout")
	cmd.Flags().IntVarP(&count, "one-time", "n", 100, "number of one-time prekeys")
	cmd.Flags().Uint32Var(&signedKeyID, "signed-key-id", 1, "key id of the signed prekey")
	cmd.Flags().Uint32Var(&firstID, "first-one-time-id", 1, "key id of the first one-time prekey")
	return cmd
}

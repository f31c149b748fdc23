package commands

import (
	"github.com/spf13/cobra"

	"spongecrypt/internal/keys"
	"spongecrypt/internal/protocol/ecies"
	"spongecrypt/internal/store"
	"spongecrypt/internal/util/memzero"
)

func decryptPKCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt-pk <passphrase> <in-path> <out-path>",
		Short: "Decrypt a public-key-encrypted file with the passphrase",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := store.ReadCiphertext(args[1])
			if err != nil {
				return err
			}
			s, _ := keys.Generate([]byte(args[0]))
			defer memzero.ZeroBig(s)

			msg, err := ecies.Decrypt(ct, s)
			if err != nil {
				return err
			}
			return store.WriteFile(args[2], msg, 0o600)
		},
	}
}

package commands

import (
	"crypto/rand"

	"github.com/spf13/cobra"

	"spongecrypt/internal/protocol/ecies"
	"spongecrypt/internal/store"
)

func encryptPKCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt-pk <pk-path> <msg-path> <out-path>",
		Short: "Encrypt a file to a public key",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := store.ReadPublicKey(args[0])
			if err != nil {
				return err
			}
			msg, err := store.ReadFile(args[1])
			if err != nil {
				return err
			}
			ct, err := ecies.Encrypt(rand.Reader, pub, msg)
			if err != nil {
				return err
			}
			logger.Debugw("encrypted", "plaintext", len(msg))
			return store.WriteCiphertext(args[2], ct)
		},
	}
}

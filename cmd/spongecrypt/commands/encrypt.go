package commands

import (
	"crypto/rand"

	"github.com/spf13/cobra"

	"spongecrypt/internal/protocol/symmetric"
	"spongecrypt/internal/store"
)

func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <passphrase> <in-path> <out-path>",
		Short: "Encrypt a file under a passphrase",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := store.ReadFile(args[1])
			if err != nil {
				return err
			}
			record, err := symmetric.Seal(rand.Reader, []byte(args[0]), msg)
			if err != nil {
				return err
			}
			logger.Debugw("sealed", "plaintext", len(msg), "record", len(record))
			return store.WriteFile(args[2], record, 0o600)
		},
	}
}

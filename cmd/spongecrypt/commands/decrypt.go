package commands

import (
	"github.com/spf13/cobra"

	"spongecrypt/internal/protocol/symmetric"
	"spongecrypt/internal/store"
)

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <passphrase> <in-path> <out-path>",
		Short: "Decrypt a passphrase-encrypted file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := store.ReadFile(args[1])
			if err != nil {
				return err
			}
			msg, err := symmetric.Open(record, []byte(args[0]))
			if err != nil {
				return err
			}
			return store.WriteFile(args[2], msg, 0o600)
		},
	}
}

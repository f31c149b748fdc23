package commands

import (
	"crypto/rand"

	"github.com/spf13/cobra"

	"spongecrypt/internal/keys"
	"spongecrypt/internal/protocol/schnorr"
	"spongecrypt/internal/store"
	"spongecrypt/internal/util/memzero"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <passphrase> <msg-path> <out-path>",
		Short: "Sign a file with the key pair derived from a passphrase",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := store.ReadFile(args[1])
			if err != nil {
				return err
			}
			s, _ := keys.Generate([]byte(args[0]))
			defer memzero.ZeroBig(s)

			sig, err := schnorr.Sign(rand.Reader, s, msg)
			if err != nil {
				return err
			}
			return store.WriteSignature(args[2], sig)
		},
	}
}

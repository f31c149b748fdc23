package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spongecrypt/internal/keys"
	"spongecrypt/internal/store"
	"spongecrypt/internal/util/memzero"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen <passphrase> <out-path>",
		Short: "Derive a key pair from a passphrase and write the public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, pub := keys.Generate([]byte(args[0]))
			memzero.ZeroBig(s)

			if err := store.WritePublicKey(args[1], pub); err != nil {
				return err
			}
			fmt.Printf("public key written to %s\n", args[1])
			return nil
		},
	}
}

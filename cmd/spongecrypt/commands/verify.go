package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spongecrypt/internal/protocol/schnorr"
	"spongecrypt/internal/store"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <msg-path> <sig-path> <pk-path>",
		Short: "Verify a signature over a file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := store.ReadFile(args[0])
			if err != nil {
				return err
			}
			sig, err := store.ReadSignature(args[1])
			if err != nil {
				return err
			}
			pub, err := store.ReadPublicKey(args[2])
			if err != nil {
				return err
			}
			if err := schnorr.Verify(msg, sig, pub); err != nil {
				fmt.Println("signature: INVALID")
				return err
			}
			fmt.Println("signature: valid")
			return nil
		},
	}
}

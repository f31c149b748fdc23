package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"spongecrypt/internal/sha3"
	"spongecrypt/internal/store"
)

func hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <suffix> <path>",
		Short: "Print the SHA3-<suffix> digest of a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			suffix, err := parseSuffix(args[0], 224, 256, 384, 512)
			if err != nil {
				return err
			}
			data, err := store.ReadFile(args[1])
			if err != nil {
				return err
			}
			logger.Debugw("hashing", "suffix", suffix, "bytes", len(data))
			fmt.Println(hex.EncodeToString(sha3.Sum(suffix, data)))
			return nil
		},
	}
}

package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"spongecrypt/internal/sha3"
	"spongecrypt/internal/store"
)

// mac absorbs the passphrase and then the file into a SHAKE sponge and
// squeezes the requested number of output bits.
func macCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mac <suffix> <passphrase> <path> <out-bits>",
		Short: "Print a SHAKE-<suffix> MAC of a file under a passphrase",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			suffix, err := parseSuffix(args[0], 128, 256)
			if err != nil {
				return err
			}
			outBits, err := parseOutBits(args[3])
			if err != nil {
				return err
			}
			data, err := store.ReadFile(args[2])
			if err != nil {
				return err
			}

			sp := sha3.NewSHAKE(suffix)
			sp.Absorb([]byte(args[1]))
			sp.Absorb(data)
			logger.Debugw("mac", "suffix", suffix, "bytes", len(data), "outBits", outBits)
			fmt.Println(hex.EncodeToString(sp.Squeeze(outBits / 8)))
			return nil
		},
	}
}

func parseOutBits(arg string) (int, error) {
	bits, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("out-bits %q is not a number", arg)
	}
	if bits <= 0 || bits%8 != 0 {
		return 0, fmt.Errorf("out-bits %d is not a positive multiple of 8", bits)
	}
	return bits, nil
}

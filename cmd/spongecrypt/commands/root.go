package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.SugaredLogger
)

func Execute() error {
	root := &cobra.Command{
		Use:          "spongecrypt",
		Short:        "SHA-3/SHAKE hashing and NUMS-256 public-key toolkit",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zapcore.WarnLevel
			if verbose {
				level = zapcore.DebugLevel
			}
			cfg := zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(level)
			l, err := cfg.Build()
			if err != nil {
				return err
			}
			logger = l.Sugar()
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each processing step")

	root.AddCommand(
		hashCmd(), macCmd(),
		encryptCmd(), decryptCmd(),
		keygenCmd(), encryptPKCmd(), decryptPKCmd(),
		signCmd(), verifyCmd(),
	)
	return root.Execute()
}

// parseSuffix parses a numeric variant suffix and checks it against the
// allowed set for the command.
func parseSuffix(arg string, allowed ...int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("suffix %q is not a number", arg)
	}
	for _, a := range allowed {
		if n == a {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unsupported suffix %d (want one of %v)", n, allowed)
}

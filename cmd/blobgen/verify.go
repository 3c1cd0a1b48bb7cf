package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/FreeMasen/blobber"
)

// newVerifyCommand creates the verify command
func newVerifyCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <vectors.json>",
		Short: "Check golden fixture vectors",
		Long:  "Regenerate every fixture in a test vector file and compare its Blake2b-256 fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v.GetString("log_level"))
			if err != nil {
				return err
			}
			defer logger.Sync()

			return runVerify(args[0], logger)
		},
	}
}

func runVerify(path string, logger *zap.Logger) error {
	suite, err := blobber.LoadTestVectors(path)
	if err != nil {
		return err
	}

	logger.Info("Verifying test vectors",
		zap.String("path", path),
		zap.String("version", suite.Version),
		zap.Int("count", len(suite.Vectors)),
	)

	failed := 0
	for _, tv := range suite.Vectors {
		if err := tv.Verify(); err != nil {
			failed++
			logger.Error("Vector failed", zap.String("name", tv.Name), zap.Error(err))
			continue
		}
		logger.Debug("Vector passed", zap.String("name", tv.Name))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d vectors failed", failed, len(suite.Vectors))
	}
	logger.Info("All vectors passed", zap.Int("count", len(suite.Vectors)))
	return nil
}

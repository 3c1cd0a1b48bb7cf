// Command blobgen writes test fixtures produced by the blobber package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCommand(viper.New()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blobgen",
		Short: "Generate test fixture data",
		Long: `blobgen produces byte blobs and text of an exact length for use as test fixtures.

Output is built by repeating a template, numbering repetitions, or drawing from a
small deterministic PRNG. It is not suitable for anything security related.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile := v.GetString("config"); configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config file: %w", err)
				}
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Config file path (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	v.SetEnvPrefix("BLOBGEN")
	v.AutomaticEnv()

	rootCmd.AddCommand(newGenerateCommand(v))
	rootCmd.AddCommand(newVerifyCommand(v))
	rootCmd.AddCommand(newVersionCommand(Version, BuildTime, GitCommit))

	return rootCmd
}

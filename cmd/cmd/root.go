package cmd

import (
	"os"

	"github.com/humane-cli/humane/internal/logger"
	"github.com/spf13/cobra"
)

const AppName = "humane"

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: AppName + " - human friendly text formatting and parsing",
	}

	rootCmd.PersistentFlags().String("log-level", "INFO", "minimum log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(DefineSizeCommand())
	rootCmd.AddCommand(DefineLengthCommand())
	rootCmd.AddCommand(DefineNumberCommand())
	rootCmd.AddCommand(DefineTimespanCommand())
	rootCmd.AddCommand(DefineRunCommand())
	rootCmd.AddCommand(DefineTableCommand())
	rootCmd.AddCommand(DefineUsageCommand())
	rootCmd.AddCommand(DefineDemoCommand())
	rootCmd.AddCommand(DefineVersionCommand())

	return rootCmd.Execute()
}

func newLogger(cmd *cobra.Command) *logger.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logger.New(os.Stderr, logger.ParseLevel(level))
}

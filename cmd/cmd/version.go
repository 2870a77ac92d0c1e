package cmd

import (
	"fmt"

	"github.com/humane-cli/humane/internal/env"
	"github.com/spf13/cobra"
)

func DefineVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "Print version information",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Version:    %s\n", env.Version)
			fmt.Printf("Commit:     %s\n", env.CommitHash)
			fmt.Printf("Build Time: %s\n", env.BuildTime)
			return nil
		},
	}
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/humane-cli/humane/pkg/human"
	"github.com/spf13/cobra"
)

func DefineNumberCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "number <value>",
		Short:        "Format a number with thousands separators",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunNumber,
	}

	cmd.Flags().IntP("decimals", "d", 2, "maximum number of decimal places")

	return cmd
}

func RunNumber(cmd *cobra.Command, args []string) error {
	decimals, _ := cmd.Flags().GetInt("decimals")

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}
	fmt.Println(human.FormatNumber(value, decimals))
	return nil
}

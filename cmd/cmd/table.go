package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/humane-cli/humane/pkg/table"
	"github.com/spf13/cobra"
)

func DefineTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Format tabular data from standard input as a table",
		Long: `The 'table' command reads tabular data from standard input (each line is a
row, each field is a column) and prints the rendered table to standard
output. By default fields are separated by whitespace, see --delimiter.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunTable,
	}

	cmd.Flags().StringP("delimiter", "d", "", "field delimiter (default: any whitespace)")
	cmd.Flags().Bool("header", false, "treat the first row as column names")

	return cmd
}

func RunTable(cmd *cobra.Command, args []string) error {
	delimiter, _ := cmd.Flags().GetString("delimiter")
	header, _ := cmd.Flags().GetBool("header")

	var rows [][]string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if delimiter != "" {
			rows = append(rows, strings.Split(line, delimiter))
		} else {
			rows = append(rows, strings.Fields(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	var columnNames []string
	if header && len(rows) > 0 {
		columnNames, rows = rows[0], rows[1:]
	}
	fmt.Print(table.Format(rows, columnNames))
	return nil
}

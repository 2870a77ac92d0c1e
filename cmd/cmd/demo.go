package cmd

import (
	"fmt"

	"github.com/humane-cli/humane/internal/term"
	"github.com/humane-cli/humane/pkg/table"
	"github.com/spf13/cobra"
)

func DefineDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "demo",
		Short:        "Demonstrate ANSI text styles and colors",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunDemo,
	}
}

func RunDemo(cmd *cobra.Command, args []string) error {
	fmt.Println(term.Wrap("Text styles:", term.StyleOptions{Styles: []string{"bold"}}))
	fmt.Printf(" - %s\n", term.Wrap("Normal", term.StyleOptions{Color: term.HighlightColor()}))
	for _, style := range term.StyleNames() {
		fmt.Printf(" - %s\n", term.Wrap(style, term.StyleOptions{
			Color:  term.HighlightColor(),
			Styles: []string{style},
		}))
	}

	fmt.Println()
	fmt.Println(term.Wrap("Color intensities:", term.StyleOptions{Styles: []string{"bold"}}))
	var rows [][]string
	for _, color := range term.ColorNames() {
		rows = append(rows, []string{
			color,
			term.Wrap("XXXXXX", term.StyleOptions{Color: color, Styles: []string{"faint"}}),
			term.Wrap("XXXXXX", term.StyleOptions{Color: color}),
			term.Wrap("XXXXXX", term.StyleOptions{Color: color, Bright: true}),
		})
	}
	fmt.Print(table.Format(rows, []string{"Color", "Faint", "Normal", "Bright"}))
	return nil
}

// Copyright (c) 2025 The humane authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/humane-cli/humane/pkg/human"
	"github.com/spf13/cobra"
)

func DefineLengthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "length <metres>",
		Short:        "Convert a metre count into a human readable length",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunLength,
	}

	cmd.Flags().BoolP("parse", "p", false, "parse a human readable length (e.g. \"15.3cm\") and print the number of metres")
	cmd.Flags().Bool("keep-width", false, "do not strip trailing zeros from the formatted number")

	return cmd
}

func RunLength(cmd *cobra.Command, args []string) error {
	parse, _ := cmd.Flags().GetBool("parse")
	keepWidth, _ := cmd.Flags().GetBool("keep-width")

	if parse {
		metres, err := human.ParseLength(args[0])
		if err != nil {
			return err
		}
		fmt.Println(strconv.FormatFloat(metres, 'f', -1, 64))
		return nil
	}

	metres, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid metre count %q: %w", args[0], err)
	}
	fmt.Println(human.FormatLength(metres, keepWidth))
	return nil
}

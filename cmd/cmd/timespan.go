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

func DefineTimespanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "timespan <seconds>",
		Short:        "Convert a number of seconds into a human readable timespan",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunTimespan,
	}

	cmd.Flags().BoolP("parse", "p", false, "parse a human friendly timespan (e.g. \"5h\") and print the number of seconds")
	cmd.Flags().Bool("detailed", false, "report milliseconds as a separate unit and do not cap the unit count")
	cmd.Flags().Int("max-units", human.DefaultMaxUnits, "maximum number of units to report")

	return cmd
}

func RunTimespan(cmd *cobra.Command, args []string) error {
	parse, _ := cmd.Flags().GetBool("parse")
	detailed, _ := cmd.Flags().GetBool("detailed")
	maxUnits, _ := cmd.Flags().GetInt("max-units")

	if parse {
		seconds, err := human.ParseTimespan(args[0])
		if err != nil {
			return err
		}
		fmt.Println(strconv.FormatFloat(seconds, 'f', -1, 64))
		return nil
	}

	seconds, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid number of seconds %q: %w", args[0], err)
	}
	fmt.Println(human.FormatTimespan(seconds, detailed, maxUnits))
	return nil
}

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
	"io"
	"os"

	"github.com/humane-cli/humane/internal/term"
	"github.com/humane-cli/humane/pkg/usage"
	"github.com/spf13/cobra"
)

func DefineUsageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "usage [file]",
		Short: "Highlight a usage message and show it on the terminal",
		Long: `The 'usage' command reads a usage message from the given file (or standard
input) and prints it with command line options, environment variables and
meta variables highlighted. Long output is piped through the pager.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         RunUsage,
	}
}

func RunUsage(cmd *cobra.Command, args []string) error {
	var (
		text []byte
		err  error
	)
	if len(args) == 1 {
		text, err = os.ReadFile(args[0])
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	highlight := func(token string) string {
		return term.Wrap(token, term.StyleOptions{Color: term.HighlightColor()})
	}
	if !term.Connected(os.Stdout) {
		// No escape sequences when the output is redirected.
		highlight = func(token string) string { return token }
	}
	return term.ShowPager(usage.FormatUsage(string(text), highlight) + "\n")
}

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
package term

import (
	"os"
	"os/exec"
	"strings"
)

// ShowPager shows formatted text on the terminal, piping it through the
// user's pager when the text is taller than the terminal. When standard
// output is not a terminal the text is written directly.
func ShowPager(text string) error {
	lines, _ := Size()
	if !Connected(os.Stdout) || strings.Count(text, "\n") < lines {
		_, err := os.Stdout.WriteString(text)
		return err
	}

	name, args := pagerCommand()
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// pagerCommand picks the pager to use, honoring $PAGER. The -R option is
// added for less so that ANSI escape sequences are rendered.
func pagerCommand() (string, []string) {
	if pager := os.Getenv("PAGER"); pager != "" {
		fields := strings.Fields(pager)
		return fields[0], fields[1:]
	}
	return "less", []string{"-R"}
}

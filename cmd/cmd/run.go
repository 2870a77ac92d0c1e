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
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/humane-cli/humane/pkg/human"
	"github.com/humane-cli/humane/pkg/spinner"
	"github.com/spf13/cobra"
)

func DefineRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run an external command with a spinner and timer",
		Long: `The 'run' command executes an external command and renders a spinner with
the elapsed time while the command is running. The exit status of the
command is propagated.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunRun,
	}
}

func RunRun(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	child := exec.Command(args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	timer := human.NewTimer()
	err := spinner.Auto(spinner.Options{
		Label:      "Waiting for command: " + strings.Join(args, " "),
		Timer:      timer,
		HideCursor: true,
	}, child.Run)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.Warnf("command exited with status %d after %s", exitErr.ExitCode(), timer)
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return err
	}

	log.Debugf("command finished in %s", timer)
	return nil
}

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

// Package spinner renders a terminal spinner as simple feedback during
// long running operations.
package spinner

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/humane-cli/humane/internal/term"
	"github.com/humane-cli/humane/pkg/human"
)

// MinRefreshRate limits how often the spinner is redrawn.
const MinRefreshRate = 200 * time.Millisecond

var states = []string{"-", "\\", "|", "/"}

// Options configures a Spinner.
type Options struct {
	Label string
	// Total is the expected number of steps. When non-zero, Step
	// renders a progress percentage relative to it.
	Total float64
	// Stream is the output stream, os.Stderr by default.
	Stream io.Writer
	// Interactive overrides terminal detection on Stream when set.
	Interactive *bool
	// Timer, when set, makes the spinner show its elapsed time.
	Timer *human.Timer
	// HideCursor hides the text cursor while the spinner is active.
	HideCursor bool
}

// Spinner shows an animated progress indicator on the terminal. All
// writes are suppressed when the stream is not connected to a terminal,
// so callers do not need to guard for redirected output.
type Spinner struct {
	opts        Options
	interactive bool
	counter     int
	lastUpdate  time.Time
}

// New creates a spinner. Call Clear when done so that the cursor is
// restored and the spinner line is erased.
func New(opts Options) *Spinner {
	if opts.Stream == nil {
		opts.Stream = os.Stderr
	}
	interactive := false
	if opts.Interactive != nil {
		interactive = *opts.Interactive
	} else if f, ok := opts.Stream.(*os.File); ok {
		interactive = term.Connected(f)
	}
	s := &Spinner{opts: opts, interactive: interactive}
	if s.interactive && opts.HideCursor {
		fmt.Fprint(opts.Stream, term.HideCursor)
	}
	return s
}

// Step advances the spinner and redraws it, rate limited to
// MinRefreshRate. Progress is the number of the current step relative to
// Total; pass zero when there is no meaningful progress value.
func (s *Spinner) Step(progress float64) {
	if !s.interactive || time.Since(s.lastUpdate) < MinRefreshRate {
		return
	}
	s.lastUpdate = time.Now()

	label := s.opts.Label
	switch {
	case s.opts.Total != 0 && progress != 0:
		label = fmt.Sprintf("%s: %.2f%%", label, progress/(s.opts.Total/100))
	case s.opts.Timer != nil && s.opts.Timer.Elapsed() > 2*time.Second:
		label = fmt.Sprintf("%s (%s)", label, s.opts.Timer.Rounded())
	}
	fmt.Fprintf(s.opts.Stream, "%s %s %s ..\r", term.EraseLine, states[s.counter%len(states)], label)
	s.counter++
}

// Sleep waits for the redraw interval. Useful in tight loops that would
// otherwise spend their time being rate limited.
func (s *Spinner) Sleep() {
	time.Sleep(MinRefreshRate)
}

// Clear erases the spinner line and restores the cursor, so the next
// line of output overwrites the spinner.
func (s *Spinner) Clear() {
	if s.interactive {
		if s.opts.HideCursor {
			fmt.Fprint(s.opts.Stream, term.ShowCursor)
		}
		fmt.Fprint(s.opts.Stream, term.EraseLine)
	}
}

// Auto runs a spinner on its own goroutine for as long as fn runs,
// stepping it automatically. It returns fn's error.
func Auto(opts Options, fn func() error) error {
	s := New(opts)
	defer s.Clear()

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(MinRefreshRate)
		defer ticker.Stop()
		for {
			s.Step(0)
			select {
			case <-done:
				return
			case <-ticker.C:
			}
		}
	}()

	err := fn()
	close(done)
	<-finished
	return err
}

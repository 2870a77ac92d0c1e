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
package human

import (
	"math"
	"time"
)

// Timer keeps track of the duration of long running operations.
// The zero value is not useful, use NewTimer or NewResumableTimer.
type Timer struct {
	resumable bool
	startTime time.Time
	totalTime time.Duration
}

// NewTimer returns a timer counting from now.
func NewTimer() *Timer {
	return &Timer{startTime: time.Now()}
}

// NewResumableTimer returns a stopped timer that accumulates time between
// Start and Stop calls.
func NewResumableTimer() *Timer {
	return &Timer{resumable: true}
}

// Start resumes counting elapsed time.
func (t *Timer) Start() {
	if t.resumable {
		t.startTime = time.Now()
	}
}

// Stop pauses counting elapsed time.
func (t *Timer) Stop() {
	if t.resumable && !t.startTime.IsZero() {
		t.totalTime += time.Since(t.startTime)
		t.startTime = time.Time{}
	}
}

// Elapsed returns the duration counted so far.
func (t *Timer) Elapsed() time.Duration {
	elapsed := t.totalTime
	if !t.startTime.IsZero() {
		elapsed += time.Since(t.startTime)
	}
	return elapsed
}

// Rounded returns the elapsed time formatted as a human readable
// timespan, rounded to whole seconds.
func (t *Timer) Rounded() string {
	return FormatTimespan(math.Round(t.Elapsed().Seconds()), false, DefaultMaxUnits)
}

// String returns the elapsed time formatted as a human readable timespan.
func (t *Timer) String() string {
	return FormatTimespan(t.Elapsed().Seconds(), false, DefaultMaxUnits)
}

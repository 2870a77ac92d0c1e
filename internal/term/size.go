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
	"strconv"
)

const (
	defaultLines   = 25
	defaultColumns = 80
)

// Size determines the dimensions of the controlling terminal, trying the
// kernel first, then the LINES and COLUMNS environment variables, and
// finally falling back to the traditional 80x25.
func Size() (lines, columns int) {
	for _, stream := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		if lines, columns, ok := windowSize(stream); ok {
			return lines, columns
		}
	}
	lines = intFromEnv("LINES", defaultLines)
	columns = intFromEnv("COLUMNS", defaultColumns)
	return lines, columns
}

func intFromEnv(name string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(name)); err == nil && v > 0 {
		return v
	}
	return fallback
}

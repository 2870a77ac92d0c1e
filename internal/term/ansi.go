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

// Package term generates ANSI escape sequences and probes the controlling
// terminal.
package term

import (
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	csi = "\x1b["

	// EraseLine clears the current line and moves the cursor back to
	// the start of the line.
	EraseLine = "\r" + csi + "K"

	// HideCursor and ShowCursor toggle the visibility of the text cursor.
	HideCursor = csi + "?25l"
	ShowCursor = csi + "?25h"

	reset = csi + "0m"
)

var colorCodes = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

var styleCodes = map[string]int{
	"bold":           1,
	"faint":          2,
	"italic":         3,
	"underline":      4,
	"inverse":        7,
	"strike_through": 9,
}

var escapePattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// StyleOptions selects the color and text styles applied by Style and Wrap.
type StyleOptions struct {
	Color  string // one of black, red, green, yellow, blue, magenta, cyan, white
	Bright bool
	Styles []string // any of bold, faint, italic, underline, inverse, strike_through
}

// HighlightColor returns the color used to highlight usage messages and
// other items of special significance. It can be overridden through the
// HUMANE_HIGHLIGHT_COLOR environment variable.
func HighlightColor() string {
	if color := os.Getenv("HUMANE_HIGHLIGHT_COLOR"); color != "" {
		return color
	}
	return "green"
}

// Style returns the ANSI escape sequence selecting the given color and
// text styles. Unknown color or style names are ignored.
func Style(opts StyleOptions) string {
	var codes []int
	for _, style := range opts.Styles {
		if code, ok := styleCodes[style]; ok {
			codes = append(codes, code)
		}
	}
	if code, ok := colorCodes[opts.Color]; ok {
		offset := 30
		if opts.Bright {
			offset = 90
		}
		codes = append(codes, offset+code)
	}
	if len(codes) == 0 {
		return ""
	}
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = strconv.Itoa(code)
	}
	return csi + strings.Join(parts, ";") + "m"
}

// Wrap applies the given color and text styles to text and resets the
// terminal attributes afterwards. Text is returned unchanged when the
// options select nothing.
func Wrap(text string, opts StyleOptions) string {
	sequence := Style(opts)
	if sequence == "" {
		return text
	}
	return sequence + text + reset
}

// Strip removes ANSI escape sequences from text.
func Strip(text string) string {
	return escapePattern.ReplaceAllString(text, "")
}

// Width returns the display width of text, ignoring ANSI escape sequences.
func Width(text string) int {
	return len([]rune(Strip(text)))
}

// ColorNames returns the supported color names in sorted order.
func ColorNames() []string {
	names := make([]string, 0, len(colorCodes))
	for name := range colorCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StyleNames returns the supported text style names in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styleCodes))
	for name := range styleCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

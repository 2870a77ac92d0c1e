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
	"os"
	"path/filepath"
	"strings"
)

// FormatPath shortens an absolute pathname by abbreviating the user's
// home directory to "~". It is not an error if the pathname is not below
// the home directory; it is returned unchanged (but absolute).
func FormatPath(pathname string) string {
	abs, err := filepath.Abs(pathname)
	if err != nil {
		return pathname
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return abs
	}
	if rel, err := filepath.Rel(home, abs); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.Join("~", rel)
	}
	return abs
}

// ParsePath converts a human friendly pathname to an absolute one,
// expanding a leading tilde and environment variable references.
func ParsePath(pathname string) string {
	if pathname == "~" || strings.HasPrefix(pathname, "~/") {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			pathname = filepath.Join(home, strings.TrimPrefix(pathname[1:], "/"))
		}
	}
	pathname = os.ExpandEnv(pathname)
	if abs, err := filepath.Abs(pathname); err == nil {
		return abs
	}
	return pathname
}

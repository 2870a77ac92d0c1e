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
	"fmt"
	"strings"
)

// InvalidQuantityError is returned when a size or length string cannot be
// parsed. It carries the raw input and the token sequence the input was
// split into, so that callers can report exactly what was understood.
type InvalidQuantityError struct {
	Kind   string
	Input  string
	Tokens []Token
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("failed to parse %s (input %q was tokenized as [%s])",
		e.Kind, e.Input, joinTokens(e.Tokens))
}

// InvalidTimespanError is returned when a timespan string cannot be parsed.
type InvalidTimespanError struct {
	Input  string
	Tokens []Token
}

func (e *InvalidTimespanError) Error() string {
	return fmt.Sprintf("failed to parse timespan (input %q was tokenized as [%s])",
		e.Input, joinTokens(e.Tokens))
}

// InvalidDateError is returned when a date string cannot be parsed.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date (expected 'YYYY-MM-DD' or 'YYYY-MM-DD HH:MM:SS' but got %q)", e.Input)
}

func joinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, ", ")
}

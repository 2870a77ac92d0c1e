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
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches the numeric runs that Tokenize sections off.
// A run is a string of digits with at most one embedded decimal point;
// a leading or trailing point is not part of the run and ends up in a
// surrounding text token, failing parsing downstream instead of here.
var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// Token is a single fragment of a tokenized input string: either a
// number or a run of text. The exact source text of number tokens is
// preserved so that callers can tell integers and fractions apart.
type Token struct {
	Number   float64
	Text     string
	IsNumber bool
	Integral bool
}

func (t Token) String() string {
	if t.IsNumber {
		return t.Text
	}
	return strconv.Quote(t.Text)
}

// Tokenize splits a human entered string into an alternating sequence of
// number and text tokens. Whitespace between tokens is discarded, an
// empty input yields an empty sequence and an input without digits yields
// a single text token.
func Tokenize(text string) []Token {
	var tokens []Token

	appendText := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			tokens = append(tokens, Token{Text: s})
		}
	}

	last := 0
	for _, loc := range numberPattern.FindAllStringIndex(text, -1) {
		appendText(text[last:loc[0]])
		run := text[loc[0]:loc[1]]
		value, _ := strconv.ParseFloat(run, 64)
		tokens = append(tokens, Token{
			Number:   value,
			Text:     run,
			IsNumber: true,
			Integral: !strings.Contains(run, "."),
		})
		last = loc[1]
	}
	appendText(text[last:])

	return tokens
}

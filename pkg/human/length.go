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
	"strconv"
	"strings"
)

// FormatLength formats a metre count as a human readable length, from
// nanometres up to kilometres: FormatLength(0, false) is "0 metres",
// FormatLength(1000, false) is "1 km" and FormatLength(0.004, false)
// is "4 mm".
func FormatLength(numMetres float64, keepWidth bool) string {
	for i := len(lengthUnits) - 1; i >= 0; i-- {
		unit := lengthUnits[i]
		if numMetres >= unit.Divider {
			number := RoundNumber(numMetres/unit.Divider, keepWidth)
			return pluralizeCount(number, unit.Singular, unit.Plural)
		}
	}
	return pluralizeCount(strconv.FormatFloat(numMetres, 'f', -1, 64), "metre", "metres")
}

// ParseLength parses a human readable length and returns the number of
// metres: ParseLength("42") is 42, ParseLength("1 km") is 1000 and
// ParseLength("15.3cm") is 0.153.
func ParseLength(length string) (float64, error) {
	tokens := Tokenize(length)
	if len(tokens) > 0 && tokens[0].IsNumber {
		// A bare number is a metre count.
		if len(tokens) == 1 {
			return tokens[0].Number, nil
		}
		if len(tokens) == 2 && !tokens[1].IsNumber {
			normalizedUnit := strings.ToLower(tokens[1].Text)
			for _, unit := range lengthUnits {
				if strings.HasPrefix(normalizedUnit, unit.Prefix) {
					return tokens[0].Number * unit.Divider, nil
				}
			}
		}
	}
	return 0, &InvalidQuantityError{Kind: "length", Input: length, Tokens: tokens}
}

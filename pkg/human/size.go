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

// FormatSize formats a byte count as a human readable file size:
// FormatSize(0, false, false) is "0 bytes", FormatSize(1000, false, false)
// is "1 KB" and FormatSize(1024, false, true) is "1 KiB". With keepWidth
// the two decimal places are padded with zeros instead of stripped. With
// binary the base-2 multiples of bytes are used instead of base-10.
func FormatSize(numBytes uint64, keepWidth, binary bool) string {
	for i := len(sizeUnits) - 1; i >= 0; i-- {
		unit := sizeUnits[i].Decimal
		if binary {
			unit = sizeUnits[i].Binary
		}
		if numBytes >= unit.Divider {
			number := RoundNumber(float64(numBytes)/float64(unit.Divider), keepWidth)
			return pluralizeCount(number, unit.Symbol, unit.Symbol)
		}
	}
	if numBytes == 1 {
		return "1 byte"
	}
	return strconv.FormatUint(numBytes, 10) + " bytes"
}

// ParseSize parses a human readable data size and returns the number of
// bytes: "42" and "13b" are taken literally, "1 KB" is 1000 and "1 KiB"
// is 1024. For the ambiguous decimal symbols and names ("KB", "K",
// "kilobyte", ...) the binary flag selects base-2 instead of base-10
// multiples, so ParseSize("1 KB", true) is 1024. Unambiguous binary
// symbols and names ("KiB", "kibibyte") ignore the flag.
func ParseSize(size string, binary bool) (uint64, error) {
	tokens := Tokenize(size)
	fail := func() (uint64, error) {
		return 0, &InvalidQuantityError{Kind: "size", Input: size, Tokens: tokens}
	}

	if len(tokens) == 0 || !tokens[0].IsNumber {
		return fail()
	}
	var normalizedUnit string
	if len(tokens) == 2 && !tokens[1].IsNumber {
		normalizedUnit = strings.ToLower(tokens[1].Text)
	}
	// A bare number is a byte count, and the unit bytes may also be
	// referenced explicitly ("5 bytes", "13b"). Either way the number
	// must be integral.
	if len(tokens) == 1 || strings.HasPrefix(normalizedUnit, "b") {
		if !tokens[0].Integral {
			return fail()
		}
		n, err := strconv.ParseUint(tokens[0].Text, 10, 64)
		if err != nil {
			return fail()
		}
		return n, nil
	}
	// Otherwise we expect two tokens: a number and a unit.
	if normalizedUnit != "" {
		for _, unit := range sizeUnits {
			// Unambiguous binary symbols and names first, their
			// handling never depends on the mode flag.
			if normalizedUnit == strings.ToLower(unit.Binary.Symbol) || normalizedUnit == unit.Binary.Name {
				return uint64(tokens[0].Number * float64(unit.Binary.Divider)), nil
			}
			// Ambiguous prefixes ("k"), symbols ("kb") and names
			// ("kilobyte") follow the caller's preference.
			if normalizedUnit == strings.ToLower(unit.Decimal.Symbol) ||
				normalizedUnit == unit.Decimal.Name ||
				strings.HasPrefix(normalizedUnit, strings.ToLower(unit.Decimal.Symbol[:1])) {
				divider := unit.Decimal.Divider
				if binary {
					divider = unit.Binary.Divider
				}
				return uint64(tokens[0].Number * float64(divider)), nil
			}
		}
	}
	return fail()
}

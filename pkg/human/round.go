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
	"strconv"
	"strings"
)

// RoundNumber formats a number with at most two decimal places. When
// keepWidth is false trailing zeros are stripped, as is a bare trailing
// decimal point, so 1.00 becomes "1" while 3.14 stays "3.14". Behavior
// for NaN and infinities is undefined; callers must guard.
func RoundNumber(value float64, keepWidth bool) string {
	text := fmt.Sprintf("%.2f", value)
	if !keepWidth {
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")
	}
	return text
}

// FormatNumber formats a number with thousands separators, e.g. 6000000.42
// becomes "6,000,000.42". At most decimals digits are kept after the
// decimal point (truncated, not rounded) and trailing zeros are dropped.
func FormatNumber(value float64, decimals int) string {
	text := strconv.FormatFloat(value, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}
	integerPart, decimalPart, _ := strings.Cut(text, ".")

	var grouped []string
	for len(integerPart) > 3 {
		grouped = append([]string{integerPart[len(integerPart)-3:]}, grouped...)
		integerPart = integerPart[:len(integerPart)-3]
	}
	grouped = append([]string{integerPart}, grouped...)

	formatted := sign + strings.Join(grouped, ",")
	if decimals >= 0 && len(decimalPart) > decimals {
		decimalPart = decimalPart[:decimals]
	}
	if decimalPart = strings.TrimRight(decimalPart, "0"); decimalPart != "" {
		formatted += "." + decimalPart
	}
	return formatted
}

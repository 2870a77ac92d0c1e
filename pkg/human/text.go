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
	"strconv"
	"strings"
)

// Pluralize combines a count with the singular or plural form of a word:
// Pluralize(1, "box", "boxes") is "1 box", Pluralize(2, "box", "boxes")
// is "2 boxes". An empty plural defaults to the singular plus "s". The
// singular form is used when the count floors to one.
func Pluralize(count float64, singular, plural string) string {
	if plural == "" {
		plural = singular + "s"
	}
	return pluralizeString(strconv.FormatFloat(count, 'f', -1, 64), math.Floor(count) == 1, singular, plural)
}

// pluralizeCount combines an already formatted count with a word. The
// rounded string itself decides singular vs plural: a count that rounds
// to exactly "1" (or "1.00" in keep-width mode) reads as singular even
// when the underlying ratio was not exactly one.
func pluralizeCount(count, singular, plural string) string {
	return pluralizeString(count, count == "1" || count == "1.00", singular, plural)
}

func pluralizeString(count string, singular bool, singularWord, pluralWord string) string {
	if singular {
		return count + " " + singularWord
	}
	return count + " " + pluralWord
}

// Concatenate joins a list of items in a human friendly way:
// Concatenate([]string{"a", "b", "c"}) is "a, b and c".
func Concatenate(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

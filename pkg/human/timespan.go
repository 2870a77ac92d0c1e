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

	"github.com/cockroachdb/apd"
)

// DefaultMaxUnits is the default maximum number of units reported by
// FormatTimespan.
const DefaultMaxUnits = 3

// timespanContext is the decimal context used to decompose timespans.
var timespanContext = apd.BaseContext.WithPrecision(50)

// FormatTimespan formats a number of seconds as a human readable string:
// FormatTimespan(1, false, 3) is "1 second" and a year, two days and
// three hours of seconds comes out as "1 year, 2 days and 3 hours". At
// most maxUnits units are reported, later (smaller) units are dropped. In
// detailed mode milliseconds are reported as a separate unit instead of
// fractional seconds and no cap applies.
//
// The decomposition runs on decimals rather than floats so that the
// repeated divide-and-subtract over the unit cascade cannot drift.
func FormatTimespan(numSeconds float64, detailed bool, maxUnits int) string {
	if numSeconds < 60 && !detailed {
		// Fast path.
		return pluralizeCount(RoundNumber(numSeconds, false), "second", "seconds")
	}

	remainder, _, err := apd.NewFromString(strconv.FormatFloat(numSeconds, 'f', -1, 64))
	if err != nil {
		// Non-finite input, documented as caller error.
		return pluralizeCount(RoundNumber(numSeconds, false), "second", "seconds")
	}

	relevantUnits := timeUnits[1:]
	if detailed {
		relevantUnits = timeUnits
	}

	var result []string
	for i := len(relevantUnits) - 1; i >= 0; i-- {
		unit := relevantUnits[i]
		divider, _, _ := apd.NewFromString(strconv.FormatFloat(unit.Divider, 'f', -1, 64))
		if i > 0 {
			// Integer count for all but the smallest unit.
			quotient := new(apd.Decimal)
			if _, err := timespanContext.QuoInteger(quotient, remainder, divider); err != nil {
				break
			}
			timespanContext.Rem(remainder, remainder, divider)
			count, _ := quotient.Int64()
			if count != 0 {
				result = append(result, pluralizeCount(strconv.FormatInt(count, 10), unit.Singular, unit.Plural))
			}
		} else {
			// The smallest unit keeps its sub-unit fraction,
			// rounded instead of truncated.
			quotient := new(apd.Decimal)
			if _, err := timespanContext.Quo(quotient, remainder, divider); err != nil {
				break
			}
			value, _ := quotient.Float64()
			if count := RoundNumber(value, false); count != "0" {
				result = append(result, pluralizeCount(count, unit.Singular, unit.Plural))
			}
		}
	}

	if len(result) == 1 {
		return result[0]
	}
	if !detailed && len(result) > maxUnits {
		// Drop insignificant trailing units.
		result = result[:maxUnits]
	}
	return Concatenate(result)
}

// ParseTimespan parses a human friendly timespan like "5h", "10m" or
// "42s" into a number of seconds. A bare number is taken as seconds.
// Each unit is matched case insensitively against its singular form,
// plural form and abbreviations (ms, s/sec/secs, m/min/mins, h, d, w, y).
func ParseTimespan(timespan string) (float64, error) {
	tokens := Tokenize(timespan)
	if len(tokens) > 0 && tokens[0].IsNumber {
		if len(tokens) == 1 {
			return tokens[0].Number, nil
		}
		if len(tokens) == 2 && !tokens[1].IsNumber {
			normalizedUnit := strings.ToLower(tokens[1].Text)
			for _, unit := range timeUnits {
				if matchesTimeUnit(normalizedUnit, unit) {
					return tokens[0].Number * unit.Divider, nil
				}
			}
		}
	}
	return 0, &InvalidTimespanError{Input: timespan, Tokens: tokens}
}

func matchesTimeUnit(normalized string, unit timeUnit) bool {
	if normalized == unit.Singular || normalized == unit.Plural {
		return true
	}
	for _, abbreviation := range unit.Abbreviations {
		if normalized == abbreviation {
			return true
		}
	}
	return false
}

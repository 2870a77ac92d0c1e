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
	"time"
)

// ParseDate parses a date/time string in one of the formats "YYYY-MM-DD"
// or "YYYY-MM-DD HH:MM:SS" into a time.Time in the local timezone.
// A missing month or day defaults to one, missing time fields to zero.
func ParseDate(datestring string) (time.Time, error) {
	fields := strings.Fields(datestring)

	fail := func() (time.Time, error) {
		return time.Time{}, &InvalidDateError{Input: datestring}
	}
	if len(fields) == 0 {
		return fail()
	}

	dateParts, err := splitInts(fields[0], "-")
	if err != nil || len(dateParts) == 0 || len(dateParts) > 3 {
		return fail()
	}
	dateParts = append(dateParts, 1, 1)

	var timeParts []int
	if len(fields) >= 2 {
		timeParts, err = splitInts(fields[1], ":")
		if err != nil || len(timeParts) == 0 || len(timeParts) > 3 {
			return fail()
		}
	}
	timeParts = append(timeParts, 0, 0, 0)

	return time.Date(dateParts[0], time.Month(dateParts[1]), dateParts[2],
		timeParts[0], timeParts[1], timeParts[2], 0, time.Local), nil
}

func splitInts(text, sep string) ([]int, error) {
	parts := strings.Split(text, sep)
	numbers := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		numbers[i] = n
	}
	return numbers, nil
}

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

// Package human converts byte counts, lengths, numbers and time durations
// to and from human readable string representations.
package human

// SizeUnit describes a single multiple of bytes.
type SizeUnit struct {
	Divider uint64
	Symbol  string
	Name    string
}

// CombinedSizeUnit pairs the decimal (base-10) and binary (base-2)
// interpretation of a byte multiple. The decimal symbol ("KB") and its
// one letter prefix ("K") are ambiguous: which of the two dividers they
// denote depends on a caller supplied mode flag. The binary symbol
// ("KiB") is never ambiguous.
type CombinedSizeUnit struct {
	Decimal SizeUnit
	Binary  SizeUnit
}

// sizeUnits holds the supported multiples of bytes, ascending by divider.
var sizeUnits = []CombinedSizeUnit{
	{Decimal: SizeUnit{1e3, "KB", "kilobyte"}, Binary: SizeUnit{1 << 10, "KiB", "kibibyte"}},
	{Decimal: SizeUnit{1e6, "MB", "megabyte"}, Binary: SizeUnit{1 << 20, "MiB", "mebibyte"}},
	{Decimal: SizeUnit{1e9, "GB", "gigabyte"}, Binary: SizeUnit{1 << 30, "GiB", "gibibyte"}},
	{Decimal: SizeUnit{1e12, "TB", "terabyte"}, Binary: SizeUnit{1 << 40, "TiB", "tebibyte"}},
	{Decimal: SizeUnit{1e15, "PB", "petabyte"}, Binary: SizeUnit{1 << 50, "PiB", "pebibyte"}},
	{Decimal: SizeUnit{1e18, "EB", "exabyte"}, Binary: SizeUnit{1 << 60, "EiB", "exbibyte"}},
}

// lengthUnit describes a single multiple of metres. Prefix is the string
// used to recognize the unit in parsed input.
type lengthUnit struct {
	Prefix   string
	Divider  float64
	Singular string
	Plural   string
}

// lengthUnits holds the supported multiples of metres, ascending by divider.
// Parsing scans the table in this order, so "m" must come after "nm", "mm"
// and "cm" to keep the prefix match unambiguous.
var lengthUnits = []lengthUnit{
	{Prefix: "nm", Divider: 1e-09, Singular: "nm", Plural: "nm"},
	{Prefix: "mm", Divider: 1e-03, Singular: "mm", Plural: "mm"},
	{Prefix: "cm", Divider: 1e-02, Singular: "cm", Plural: "cm"},
	{Prefix: "m", Divider: 1, Singular: "metre", Plural: "metres"},
	{Prefix: "km", Divider: 1000, Singular: "km", Plural: "km"},
}

// timeUnit describes a single multiple of seconds.
type timeUnit struct {
	Divider       float64
	Singular      string
	Plural        string
	Abbreviations []string
}

// timeUnits holds the supported multiples of seconds, ascending by divider.
// A year is defined as 52 weeks.
var timeUnits = []timeUnit{
	{Divider: 1e-3, Singular: "millisecond", Plural: "milliseconds", Abbreviations: []string{"ms"}},
	{Divider: 1, Singular: "second", Plural: "seconds", Abbreviations: []string{"s", "sec", "secs"}},
	{Divider: 60, Singular: "minute", Plural: "minutes", Abbreviations: []string{"m", "min", "mins"}},
	{Divider: 60 * 60, Singular: "hour", Plural: "hours", Abbreviations: []string{"h"}},
	{Divider: 60 * 60 * 24, Singular: "day", Plural: "days", Abbreviations: []string{"d"}},
	{Divider: 60 * 60 * 24 * 7, Singular: "week", Plural: "weeks", Abbreviations: []string{"w"}},
	{Divider: 60 * 60 * 24 * 7 * 52, Singular: "year", Plural: "years", Abbreviations: []string{"y"}},
}

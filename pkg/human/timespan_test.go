package human_test

import (
	"math"
	"testing"

	"github.com/humane-cli/humane/pkg/human"
	"github.com/stretchr/testify/require"
)

const (
	minute = 60
	hour   = minute * 60
	day    = hour * 24
	week   = day * 7
	year   = week * 52
)

func TestFormatTimespan(t *testing.T) {
	for _, tc := range []struct {
		seconds  float64
		expected string
	}{
		{0, "0 seconds"},
		{0.54321, "0.54 seconds"},
		{0.5, "0.5 seconds"},
		{1, "1 second"},
		{math.Pi, "3.14 seconds"},
		{minute, "1 minute"},
		{80, "1 minute and 20 seconds"},
		{minute * 2, "2 minutes"},
		{hour, "1 hour"},
		{hour * 2, "2 hours"},
		{day, "1 day"},
		{week, "1 week"},
		{year, "1 year"},
		{year * 2, "2 years"},
		{year + 2*day + 3*hour, "1 year, 2 days and 3 hours"},
	} {
		require.Equal(t, tc.expected, human.FormatTimespan(tc.seconds, false, human.DefaultMaxUnits), "%v seconds", tc.seconds)
	}
}

// Insignificant trailing units are dropped, not rounded into earlier ones.
func TestFormatTimespanMaxUnits(t *testing.T) {
	span := float64(year + 2*week + 3*day + 12*hour)
	require.Equal(t, "1 year, 2 weeks and 3 days", human.FormatTimespan(span, false, 3))
	require.Equal(t, "1 year and 2 weeks", human.FormatTimespan(span, false, 2))
	require.Equal(t, "1 year, 2 weeks, 3 days and 12 hours", human.FormatTimespan(span, false, 4))
}

func TestFormatTimespanDetailed(t *testing.T) {
	require.Equal(t, "1 millisecond", human.FormatTimespan(0.001, true, human.DefaultMaxUnits))
	require.Equal(t, "500 milliseconds", human.FormatTimespan(0.5, true, human.DefaultMaxUnits))
	require.Equal(t, "1 second and 500 milliseconds", human.FormatTimespan(1.5, true, human.DefaultMaxUnits))
	require.Equal(t, "1 minute, 1 second and 100 milliseconds", human.FormatTimespan(61.1, true, human.DefaultMaxUnits))
}

func TestParseTimespan(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected float64
	}{
		{"42", 42},
		{"42s", 42},
		{"1m", 60},
		{"1h", 3600},
		{"1d", 86400},
		{"1w", 7 * 86400},
		{"1y", 52 * 7 * 86400},
		{"500ms", 0.5},
		{"5 secs", 5},
		{"10 minutes", 600},
		{"0.5 hours", 1800},
		{"1 SECOND", 1},
	} {
		actual, err := human.ParseTimespan(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		require.InDelta(t, tc.expected, actual, 1e-9, "input %q", tc.input)
	}
}

func TestParseTimespanErrors(t *testing.T) {
	for _, input := range []string{"", "1 age", "an hour", "1 2 m"} {
		_, err := human.ParseTimespan(input)
		require.Error(t, err, "input %q", input)

		var timespanErr *human.InvalidTimespanError
		require.ErrorAs(t, err, &timespanErr)
		require.Equal(t, input, timespanErr.Input)
	}
}

func TestParseTimespanErrorMessage(t *testing.T) {
	_, err := human.ParseTimespan("1 age")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"1 age"`)
	require.Contains(t, err.Error(), `[1, "age"]`)
}

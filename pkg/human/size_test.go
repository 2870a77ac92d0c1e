package human_test

import (
	"testing"

	"github.com/humane-cli/humane/pkg/human"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	require.Equal(t, "0 bytes", human.FormatSize(0, false, false))
	require.Equal(t, "1 byte", human.FormatSize(1, false, false))
	require.Equal(t, "5 bytes", human.FormatSize(5, false, false))
	require.Equal(t, "42 bytes", human.FormatSize(42, false, false))
	require.Equal(t, "1 KB", human.FormatSize(1000, false, false))
	require.Equal(t, "1 MB", human.FormatSize(1000*1000, false, false))
	require.Equal(t, "4 GB", human.FormatSize(4*1000*1000*1000, false, false))
	require.Equal(t, "1.02 KB", human.FormatSize(1024, false, false))
	require.Equal(t, "1 KiB", human.FormatSize(1024, false, true))
	require.Equal(t, "1 MiB", human.FormatSize(1024*1024, false, true))
	require.Equal(t, "45 KB", human.FormatSize(45000, false, false))
	require.Equal(t, "2.9 TB", human.FormatSize(2900000000000, false, false))
}

func TestFormatSizeKeepWidth(t *testing.T) {
	require.Equal(t, "1.00 KB", human.FormatSize(1000, true, false))
	require.Equal(t, "1.50 KB", human.FormatSize(1500, true, false))
}

func TestParseSize(t *testing.T) {
	for _, tc := range []struct {
		input    string
		binary   bool
		expected uint64
	}{
		{"42", false, 42},
		{"13b", false, 13},
		{"0B", false, 0},
		{"5 bytes", false, 5},
		{"1 KB", false, 1000},
		{"1k", false, 1000},
		{"1 kilobyte", false, 1000},
		{"1 KiB", false, 1024},
		{"1 kibibyte", false, 1024},
		{"1 KB", true, 1024},
		{"1k", true, 1024},
		{"1.5 GB", false, 1500000000},
		{"1.5 GB", true, 1610612736},
		// Unambiguous binary symbols ignore the mode flag.
		{"1 MiB", false, 1024 * 1024},
	} {
		actual, err := human.ParseSize(tc.input, tc.binary)
		require.NoError(t, err, "input %q", tc.input)
		require.Equal(t, tc.expected, actual, "input %q (binary=%v)", tc.input, tc.binary)
	}
}

func TestParseSizeErrors(t *testing.T) {
	for _, input := range []string{"", "a", "1z", "1 2 KB", "1.5", "1.5b"} {
		_, err := human.ParseSize(input, false)
		require.Error(t, err, "input %q", input)

		var quantityErr *human.InvalidQuantityError
		require.ErrorAs(t, err, &quantityErr)
		require.Equal(t, input, quantityErr.Input)
	}
}

// The error message echoes both the raw input and the tokenized form.
func TestParseSizeErrorMessage(t *testing.T) {
	_, err := human.ParseSize("1z", false)
	require.Error(t, err)
	require.Contains(t, err.Error(), `"1z"`)
	require.Contains(t, err.Error(), `[1, "z"]`)
}

func TestSizeRoundTrip(t *testing.T) {
	// Exact multiples of a unit divider survive a round trip unchanged.
	for _, numBytes := range []uint64{0, 1, 5, 1000, 1500, 1000 * 1000, 4 * 1000 * 1000 * 1000} {
		parsed, err := human.ParseSize(human.FormatSize(numBytes, false, false), false)
		require.NoError(t, err)
		require.Equal(t, numBytes, parsed)
	}
	for _, numBytes := range []uint64{1024, 1024 * 1024, 3 * 1024 * 1024 * 1024} {
		parsed, err := human.ParseSize(human.FormatSize(numBytes, false, true), true)
		require.NoError(t, err)
		require.Equal(t, numBytes, parsed)
	}
}

func TestSizeIdempotence(t *testing.T) {
	for _, canonical := range []string{"1 KB", "1.5 GB", "45 KB", "2 TB"} {
		parsed, err := human.ParseSize(canonical, false)
		require.NoError(t, err)
		require.Equal(t, canonical, human.FormatSize(parsed, false, false))
	}
}

package human_test

import (
	"math"
	"testing"

	"github.com/humane-cli/humane/pkg/human"
	"github.com/stretchr/testify/require"
)

func TestRoundNumber(t *testing.T) {
	require.Equal(t, "1", human.RoundNumber(1, false))
	require.Equal(t, "1", human.RoundNumber(1.0, false))
	require.Equal(t, "1.00", human.RoundNumber(1, true))
	require.Equal(t, "3.14", human.RoundNumber(math.Pi, false))
	require.Equal(t, "5", human.RoundNumber(5.001, false))
	require.Equal(t, "5.00", human.RoundNumber(5.001, true))
	require.Equal(t, "0.54", human.RoundNumber(0.54321, false))
	require.Equal(t, "1.5", human.RoundNumber(1.5, false))
	require.Equal(t, "120", human.RoundNumber(120.004, false))
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "6,000,000", human.FormatNumber(6000000, 2))
	require.Equal(t, "6,000,000,000.42", human.FormatNumber(6000000000.42, 2))
	require.Equal(t, "6,000,000,000", human.FormatNumber(6000000000.42, 0))
	require.Equal(t, "1,234,567.89", human.FormatNumber(1234567.891, 2))
	require.Equal(t, "42", human.FormatNumber(42, 2))
	require.Equal(t, "999", human.FormatNumber(999, 2))
	require.Equal(t, "1,000", human.FormatNumber(1000, 2))
	require.Equal(t, "-1,234.5", human.FormatNumber(-1234.5, 2))
	require.Equal(t, "0.25", human.FormatNumber(0.25, 2))
}

package human_test

import (
	"testing"

	"github.com/humane-cli/humane/pkg/human"
	"github.com/stretchr/testify/require"
)

func TestPluralize(t *testing.T) {
	require.Equal(t, "1 word", human.Pluralize(1, "word", ""))
	require.Equal(t, "2 words", human.Pluralize(2, "word", ""))
	require.Equal(t, "1 box", human.Pluralize(1, "box", "boxes"))
	require.Equal(t, "2 boxes", human.Pluralize(2, "box", "boxes"))
	require.Equal(t, "0 boxes", human.Pluralize(0, "box", "boxes"))
	// The count is floored to pick the word.
	require.Equal(t, "1.5 box", human.Pluralize(1.5, "box", "boxes"))
	require.Equal(t, "0.5 boxes", human.Pluralize(0.5, "box", "boxes"))
}

func TestConcatenate(t *testing.T) {
	require.Equal(t, "", human.Concatenate(nil))
	require.Equal(t, "", human.Concatenate([]string{}))
	require.Equal(t, "one", human.Concatenate([]string{"one"}))
	require.Equal(t, "one and two", human.Concatenate([]string{"one", "two"}))
	require.Equal(t, "one, two and three", human.Concatenate([]string{"one", "two", "three"}))
	require.Equal(t, "a, b, c and d", human.Concatenate([]string{"a", "b", "c", "d"}))
}

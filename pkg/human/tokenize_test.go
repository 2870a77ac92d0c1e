package human_test

import (
	"testing"

	"github.com/humane-cli/humane/pkg/human"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	require.Empty(t, human.Tokenize(""))
	require.Empty(t, human.Tokenize("   "))

	tokens := human.Tokenize("42")
	require.Len(t, tokens, 1)
	require.True(t, tokens[0].IsNumber)
	require.True(t, tokens[0].Integral)
	require.Equal(t, 42.0, tokens[0].Number)
	require.Equal(t, "42", tokens[0].Text)

	tokens = human.Tokenize("1.5 GB")
	require.Len(t, tokens, 2)
	require.True(t, tokens[0].IsNumber)
	require.False(t, tokens[0].Integral)
	require.Equal(t, 1.5, tokens[0].Number)
	require.False(t, tokens[1].IsNumber)
	require.Equal(t, "GB", tokens[1].Text)

	tokens = human.Tokenize("hello")
	require.Len(t, tokens, 1)
	require.False(t, tokens[0].IsNumber)
	require.Equal(t, "hello", tokens[0].Text)

	// Whitespace between tokens is discarded, text runs keep inner spaces.
	tokens = human.Tokenize("  42  KB extra  ")
	require.Len(t, tokens, 2)
	require.Equal(t, "KB extra", tokens[1].Text)
}

// Malformed numeric runs fall out as extra tokens instead of failing here.
func TestTokenizeMalformedNumbers(t *testing.T) {
	tokens := human.Tokenize("1.5.3")
	require.Len(t, tokens, 3)
	require.True(t, tokens[0].IsNumber)
	require.Equal(t, 1.5, tokens[0].Number)
	require.Equal(t, ".", tokens[1].Text)
	require.True(t, tokens[2].IsNumber)
	require.Equal(t, 3.0, tokens[2].Number)

	tokens = human.Tokenize(".5")
	require.Len(t, tokens, 2)
	require.Equal(t, ".", tokens[0].Text)
	require.True(t, tokens[1].IsNumber)
}

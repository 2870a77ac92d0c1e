package term_test

import (
	"testing"

	"github.com/humane-cli/humane/internal/term"
	"github.com/stretchr/testify/require"
)

func TestStyle(t *testing.T) {
	require.Equal(t, "\x1b[32m", term.Style(term.StyleOptions{Color: "green"}))
	require.Equal(t, "\x1b[92m", term.Style(term.StyleOptions{Color: "green", Bright: true}))
	require.Equal(t, "\x1b[1;31m", term.Style(term.StyleOptions{Color: "red", Styles: []string{"bold"}}))
	require.Equal(t, "\x1b[1m", term.Style(term.StyleOptions{Styles: []string{"bold"}}))
	require.Equal(t, "", term.Style(term.StyleOptions{}))
	require.Equal(t, "", term.Style(term.StyleOptions{Color: "no such color"}))
}

func TestWrap(t *testing.T) {
	require.Equal(t, "\x1b[32mhello\x1b[0m", term.Wrap("hello", term.StyleOptions{Color: "green"}))
	// Nothing selected, nothing wrapped.
	require.Equal(t, "hello", term.Wrap("hello", term.StyleOptions{}))
}

func TestStrip(t *testing.T) {
	wrapped := term.Wrap("hello", term.StyleOptions{Color: "magenta", Styles: []string{"bold", "underline"}})
	require.Equal(t, "hello", term.Strip(wrapped))
	require.Equal(t, "plain", term.Strip("plain"))
}

func TestWidth(t *testing.T) {
	require.Equal(t, 5, term.Width("hello"))
	require.Equal(t, 5, term.Width(term.Wrap("hello", term.StyleOptions{Color: "cyan"})))
}

func TestHighlightColor(t *testing.T) {
	t.Setenv("HUMANE_HIGHLIGHT_COLOR", "")
	require.Equal(t, "green", term.HighlightColor())
	t.Setenv("HUMANE_HIGHLIGHT_COLOR", "magenta")
	require.Equal(t, "magenta", term.HighlightColor())
}

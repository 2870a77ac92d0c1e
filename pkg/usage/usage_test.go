package usage_test

import (
	"testing"

	"github.com/humane-cli/humane/pkg/usage"
	"github.com/stretchr/testify/require"
)

const sampleUsage = `Usage: humane [OPTIONS]

Human friendly text formatting on the command line.

Supported options:

  -s, --format-size=BYTES

    Convert a byte count (given as the integer BYTES) into a human
    readable string. See also $HUMANE_HIGHLIGHT_COLOR.

  -t, --format-timespan=SECONDS

    Convert a number of seconds into a human readable timespan.
`

func mark(token string) string {
	return "<" + token + ">"
}

func TestFindMetaVariables(t *testing.T) {
	require.Equal(t, []string{"BYTES", "SECONDS"}, usage.FindMetaVariables(sampleUsage))
	require.Equal(t, []string{"BYTES"}, usage.FindMetaVariables("--format-size=BYTES"))
	require.Empty(t, usage.FindMetaVariables("no options here"))
	require.Empty(t, usage.FindMetaVariables("--verbose BYTES"))
}

func TestFormatUsageHighlightsOptions(t *testing.T) {
	formatted := usage.FormatUsage(sampleUsage, mark)
	require.Contains(t, formatted, "<Usage: humane [OPTIONS]>")
	require.Contains(t, formatted, "<-s>, <--format-size=BYTES>")
	require.Contains(t, formatted, "<$HUMANE_HIGHLIGHT_COLOR>")
	// BYTES appears as a meta variable, so the bare word is rewritten too.
	require.Contains(t, formatted, "integer <BYTES>")
}

func TestFormatUsageLeavesUnknownUppercaseAlone(t *testing.T) {
	formatted := usage.FormatUsage("The flag --verbose makes MORE noise.", mark)
	require.Contains(t, formatted, "<--verbose>")
	// MORE never appears as an --option=VALUE suffix.
	require.Contains(t, formatted, "makes MORE noise")
	require.NotContains(t, formatted, "<MORE>")
}

func TestFormatUsageTokenBoundaries(t *testing.T) {
	// A token immediately preceded by a non-whitespace character is not
	// a token at all.
	formatted := usage.FormatUsage("see x--help and foo$BAR for details", mark)
	require.Equal(t, "see x--help and foo$BAR for details", formatted)
}

func TestFormatUsageShortAndLongOptions(t *testing.T) {
	formatted := usage.FormatUsage("use -v or --very-long-option to talk", mark)
	require.Contains(t, formatted, "<-v>")
	require.Contains(t, formatted, "<--very-long-option>")
}

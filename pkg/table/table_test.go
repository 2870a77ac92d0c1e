package table_test

import (
	"testing"

	"github.com/humane-cli/humane/pkg/table"
	"github.com/stretchr/testify/require"
)

func TestFormatEmpty(t *testing.T) {
	require.Equal(t, "", table.Format(nil, nil))
}

func TestFormat(t *testing.T) {
	expected := "" +
		"+-----+----+\n" +
		"| a   | bb |\n" +
		"| ccc | d  |\n" +
		"+-----+----+\n"
	require.Equal(t, expected, table.Format([][]string{
		{"a", "bb"},
		{"ccc", "d"},
	}, nil))
}

func TestFormatWithHeader(t *testing.T) {
	expected := "" +
		"+------+-------+\n" +
		"| Name | Size  |\n" +
		"+------+-------+\n" +
		"| one  | 1 KB  |\n" +
		"| two  | 2 MiB |\n" +
		"+------+-------+\n"
	require.Equal(t, expected, table.Format([][]string{
		{"one", "1 KB"},
		{"two", "2 MiB"},
	}, []string{"Name", "Size"}))
}

func TestFormatRaggedRows(t *testing.T) {
	expected := "" +
		"+---+----+\n" +
		"| a | bb |\n" +
		"| c |    |\n" +
		"+---+----+\n"
	require.Equal(t, expected, table.Format([][]string{
		{"a", "bb"},
		{"c"},
	}, nil))
}

func TestFormatIgnoresEscapeSequences(t *testing.T) {
	styled := "\x1b[32mok\x1b[0m"
	expected := "" +
		"+----+\n" +
		"| ok |\n" +
		"| " + styled + " |\n" +
		"+----+\n"
	require.Equal(t, expected, table.Format([][]string{{"ok"}, {styled}}, nil))
}

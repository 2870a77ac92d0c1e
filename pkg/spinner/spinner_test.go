package spinner_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/humane-cli/humane/pkg/spinner"
	"github.com/stretchr/testify/require"
)

func interactive(v bool) *bool { return &v }

func TestSpinnerStep(t *testing.T) {
	var buf bytes.Buffer
	s := spinner.New(spinner.Options{
		Label:       "Downloading",
		Stream:      &buf,
		Interactive: interactive(true),
	})

	s.Step(0)
	require.Contains(t, buf.String(), "Downloading")
	require.Contains(t, buf.String(), "-")

	// Redraws are rate limited.
	before := buf.Len()
	s.Step(0)
	require.Equal(t, before, buf.Len())
}

func TestSpinnerProgress(t *testing.T) {
	var buf bytes.Buffer
	s := spinner.New(spinner.Options{
		Label:       "Copying",
		Total:       200,
		Stream:      &buf,
		Interactive: interactive(true),
	})

	s.Step(100)
	require.Contains(t, buf.String(), "Copying: 50.00%")
}

func TestSpinnerNotInteractive(t *testing.T) {
	var buf bytes.Buffer
	s := spinner.New(spinner.Options{
		Label:       "Quiet",
		Stream:      &buf,
		Interactive: interactive(false),
		HideCursor:  true,
	})

	s.Step(0)
	s.Clear()
	require.Zero(t, buf.Len())
}

func TestSpinnerClearRestoresCursor(t *testing.T) {
	var buf bytes.Buffer
	s := spinner.New(spinner.Options{
		Label:       "Working",
		Stream:      &buf,
		Interactive: interactive(true),
		HideCursor:  true,
	})
	s.Clear()
	require.Contains(t, buf.String(), "\x1b[?25l")
	require.Contains(t, buf.String(), "\x1b[?25h")
}

func TestAuto(t *testing.T) {
	var buf bytes.Buffer
	called := false
	err := spinner.Auto(spinner.Options{
		Label:       "Waiting",
		Stream:      &buf,
		Interactive: interactive(true),
	}, func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, called)
	require.True(t, strings.Contains(buf.String(), "Waiting"))
}

package human_test

import (
	"testing"
	"time"

	"github.com/humane-cli/humane/pkg/human"
	"github.com/stretchr/testify/require"
)

func TestTimer(t *testing.T) {
	timer := human.NewTimer()
	time.Sleep(20 * time.Millisecond)
	require.GreaterOrEqual(t, timer.Elapsed(), 20*time.Millisecond)
	require.NotEmpty(t, timer.String())
}

func TestResumableTimer(t *testing.T) {
	timer := human.NewResumableTimer()
	require.Equal(t, time.Duration(0), timer.Elapsed())

	timer.Start()
	time.Sleep(20 * time.Millisecond)
	timer.Stop()

	elapsed := timer.Elapsed()
	require.GreaterOrEqual(t, elapsed, 20*time.Millisecond)

	// A stopped timer does not accumulate time.
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, elapsed, timer.Elapsed())

	timer.Start()
	time.Sleep(20 * time.Millisecond)
	timer.Stop()
	require.GreaterOrEqual(t, timer.Elapsed(), elapsed+20*time.Millisecond)
}

func TestTimerRounded(t *testing.T) {
	timer := human.NewResumableTimer()
	require.Equal(t, "0 seconds", timer.Rounded())
}

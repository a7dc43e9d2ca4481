package clock_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uartpanic/clock"
	"uartpanic/serial/serialtest"
)

func TestBringUpOrdering(t *testing.T) {
	tr := &serialtest.Trace{}
	c := serialtest.NewClock(tr, 3)

	hz := clock.BringUp(c, clock.Config{Source: 1, SourceHz: 24_000_000, Divider: 3})

	require.Equal(t, uint32(8_000_000), hz)
	require.Equal(t, []string{
		"clock.gate 0 off", "clock.gate 1 off", "clock.gate 2 off",
		"clock.source 1",
		"clock.divider 3",
		"clock.gate 0 on", "clock.gate 1 on", "clock.gate 2 on",
	}, tr.Events)
	require.Zero(t, c.Mutations, "source and divider only change with every gate off")
	require.True(t, c.AnyOn())
}

func TestBringUpFromAnyPriorState(t *testing.T) {
	tr := &serialtest.Trace{}
	c := serialtest.NewClock(tr, 2)
	c.Gated[0] = clock.Off
	c.Source = 7
	c.Divider = 64

	clock.BringUp(c, clock.Config{Source: 1, SourceHz: 24_000_000, Divider: 3})

	require.Equal(t, clock.Source(1), c.Source)
	require.Equal(t, uint32(3), c.Divider)
	require.Equal(t, clock.On, c.Gated[0])
	require.Equal(t, clock.On, c.Gated[1])
	require.Zero(t, c.Mutations)
}

func TestZeroDividerMeansUndivided(t *testing.T) {
	tr := &serialtest.Trace{}
	c := serialtest.NewClock(tr, 0)
	cfg := clock.Config{SourceHz: 12_000_000}

	require.Equal(t, uint32(12_000_000), clock.BringUp(c, cfg))
	require.Equal(t, uint32(1), c.Divider)
	require.Equal(t, []string{"clock.source 0", "clock.divider 1"}, tr.Events)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "on", clock.On.String())
	require.Equal(t, "off", clock.Off.String())
}

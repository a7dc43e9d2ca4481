package mathx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	require.Equal(t, 3, Clamp(9, 0, 3))
	require.Equal(t, 0, Clamp(-1, 0, 3))
	require.Equal(t, 2, Clamp(2, 3, 0))
	require.Equal(t, uint8(4), Clamp[uint8](4, 1, 8))
}

func TestAbsDiff(t *testing.T) {
	require.Equal(t, uint32(5), AbsDiff[uint32](10, 5))
	require.Equal(t, uint32(5), AbsDiff[uint32](5, 10))
	require.Equal(t, 0, AbsDiff(-3, -3))
}

func TestRoundDiv(t *testing.T) {
	require.Equal(t, uint32(3), RoundDiv[uint32](5, 2))
	require.Equal(t, uint32(2), RoundDiv[uint32](4, 2))
	require.Equal(t, uint32(0), RoundDiv[uint32](4, 0))
}

func TestDivOr(t *testing.T) {
	require.Equal(t, uint32(8_000_000), DivOr[uint32](24_000_000, 3, 0))
	require.Equal(t, uint32(7), DivOr[uint32](1, 0, 7))
}

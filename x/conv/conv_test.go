package conv

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUtoa(t *testing.T) {
	var buf [20]byte
	for n, want := range map[uint64]string{
		0:              "0",
		7:              "7",
		9:              "9",
		10:             "10",
		42:             "42",
		99:             "99",
		100:            "100",
		1000:           "1000",
		10001:          "10001",
		115200:         "115200",
		math.MaxUint64: "18446744073709551615",
	} {
		require.Equal(t, want, string(Utoa(buf[:], n)))
	}
}

func TestUtoaShortBufferKeepsLowDigits(t *testing.T) {
	var buf [3]byte
	require.Equal(t, "200", string(Utoa(buf[:], 115200)))
	require.Empty(t, Utoa(nil, 5))

	var one [1]byte
	require.Equal(t, "2", string(Utoa(one[:], 42)))

	var two [2]byte
	require.Equal(t, "03", string(Utoa(two[:], 1203)))
}

func TestUtoaMatchesStrconv(t *testing.T) {
	var buf [20]byte
	for n := uint64(0); n < 100_000; n += 7 {
		require.Equal(t, strconv.FormatUint(n, 10), string(Utoa(buf[:], n)))
	}
}

func TestItoa(t *testing.T) {
	var buf [20]byte
	require.Equal(t, "-42", string(Itoa(buf[:], -42)))
	require.Equal(t, "42", string(Itoa(buf[:], 42)))
	require.Equal(t, "-9223372036854775808", string(Itoa(buf[:], math.MinInt64)))
}

func TestHex(t *testing.T) {
	var buf [16]byte
	require.Equal(t, "0000002a", string(Hex(buf[:], 42, 8)))
	require.Equal(t, "deadbeef", string(Hex(buf[:], 0xDEADBEEF, 8)))
	require.Equal(t, "0", string(Hex(buf[:], 0, 0)))
	require.Equal(t, "ffffffffffffffff", string(Hex(buf[:], math.MaxUint64, 99)))
}

func TestHexWidth(t *testing.T) {
	require.Equal(t, 1, HexWidth(0))
	require.Equal(t, 1, HexWidth(0xF))
	require.Equal(t, 2, HexWidth(0x10))
	require.Equal(t, 8, HexWidth(0x2000_0000))
}

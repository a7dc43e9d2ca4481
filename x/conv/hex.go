package conv

const hexDigits = "0123456789abcdef"

// Hex writes n as exactly digits lower-case hex characters (zero-padded,
// no prefix) into the tail of buf. digits is clamped to 1..16 and to len(buf).
func Hex(buf []byte, n uint64, digits int) []byte {
	if digits < 1 {
		digits = 1
	}
	if digits > 16 {
		digits = 16
	}
	if digits > len(buf) {
		digits = len(buf)
	}
	i := len(buf)
	for j := 0; j < digits; j++ {
		i--
		buf[i] = hexDigits[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// HexWidth is the number of hex digits needed to print n (at least 1).
func HexWidth(n uint64) int {
	w := 1
	for n >>= 4; n != 0; n >>= 4 {
		w++
	}
	return w
}

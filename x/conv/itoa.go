package conv

// Itoa is Utoa with a leading '-' for negative n. buf should hold 20 bytes.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	// Negate in unsigned space so MinInt64 survives.
	s := Utoa(buf, uint64(^n)+1)
	i := len(buf) - len(s)
	if i == 0 {
		return s
	}
	i--
	buf[i] = '-'
	return buf[i:]
}

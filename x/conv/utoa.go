package conv

// pairs holds "00" through "99".
const pairs = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// Utoa writes the base-10 digits of n into the tail of buf and returns that
// tail. buf should hold 20 bytes; a shorter buf keeps the low digits.
//
// Digits are produced two per division.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	for n >= 100 && i >= 2 {
		p := n % 100 * 2
		n /= 100
		i -= 2
		buf[i], buf[i+1] = pairs[p], pairs[p+1]
	}
	if i == 0 {
		return buf
	}
	if n >= 10 && i >= 2 {
		p := n * 2
		i -= 2
		buf[i], buf[i+1] = pairs[p], pairs[p+1]
		return buf[i:]
	}
	i--
	buf[i] = byte('0' + n%10)
	return buf[i:]
}

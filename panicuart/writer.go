package panicuart

import (
	"uartpanic/serial"
	"uartpanic/x/conv"
)

// Writer emits bytes one at a time on a serial.Port, inserting a carriage
// return before every line feed. Errors from the port are discarded.
type Writer struct {
	port    serial.Port
	one     [1]byte
	scratch [20]byte
}

// NewWriter returns a Writer on port.
func NewWriter(port serial.Port) *Writer { return &Writer{port: port} }

func (w *Writer) put(c byte) {
	w.one[0] = c
	_, _ = w.port.Write(w.one[:])
}

// WriteByte emits c, preceded by '\r' when c is '\n'. It never fails.
func (w *Writer) WriteByte(c byte) error {
	if c == '\n' {
		w.put('\r')
	}
	w.put(c)
	return nil
}

// WriteString emits s with line feeds translated. It never fails and always
// reports len(s).
func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		_ = w.WriteByte(s[i])
	}
	return len(s), nil
}

// Write is WriteString for byte slices.
func (w *Writer) Write(p []byte) (int, error) {
	for _, c := range p {
		_ = w.WriteByte(c)
	}
	return len(p), nil
}

func (w *Writer) writeDigits(d []byte) {
	for _, c := range d {
		w.put(c)
	}
}

// WriteUint emits n in decimal.
func (w *Writer) WriteUint(n uint64) { w.writeDigits(conv.Utoa(w.scratch[:], n)) }

// WriteInt emits n in decimal.
func (w *Writer) WriteInt(n int64) { w.writeDigits(conv.Itoa(w.scratch[:], n)) }

// WriteHex emits "0x" and n as exactly digits hex characters. digits <= 0
// uses as many as n needs.
func (w *Writer) WriteHex(n uint64, digits int) {
	if digits <= 0 {
		digits = conv.HexWidth(n)
	}
	w.put('0')
	w.put('x')
	w.writeDigits(conv.Hex(w.scratch[:16], n, digits))
}

// Flush waits for the port to drain. The port's error is returned but the
// fault path discards it.
func (w *Writer) Flush() error { return w.port.Flush() }

// Package serial describes a transmit-only serial peripheral as the fault
// reporter needs it: acquire, bind pins, configure under a disable scope,
// write and flush.
package serial

// Direction is one side of a full-duplex peripheral.
type Direction uint8

const (
	Tx Direction = iota
	Rx
)

func (d Direction) String() string {
	if d == Rx {
		return "rx"
	}
	return "tx"
}

// Watermark is a FIFO threshold for one direction.
type Watermark struct {
	Dir   Direction
	Level uint8
}

// TxWatermark returns a transmit watermark of n words.
func TxWatermark(n uint8) Watermark { return Watermark{Dir: Tx, Level: n} }

// RxWatermark returns a receive watermark of n words.
func RxWatermark(n uint8) Watermark { return Watermark{Dir: Rx, Level: n} }

// Baud is a peripheral-specific baud register encoding, produced by
// Peripheral.ComputeBaud and consumed by Configurator.SetBaud of the same
// peripheral type.
type Baud uint32

// Configurator mutates a peripheral while it is disabled.
// None of its operations report failure.
type Configurator interface {
	SetBaud(b Baud)
	EnableFIFO(w Watermark)
	DisableFIFO(d Direction)
}

// Port is the byte-level output primitive.
// Both calls block by polling; their errors are advisory.
type Port interface {
	Write(p []byte) (int, error)
	Flush() error
}

// Peripheral is a raw serial instance.
type Peripheral interface {
	Port

	// Reset returns the instance to its post-reset state with the
	// transmitter and receiver enabled.
	Reset()

	// ComputeBaud encodes rate for an input clock of srcHz.
	// It must be a pure function of its arguments.
	ComputeBaud(srcHz, rate uint32) Baud

	// Disable suspends transmit and receive, calls fn(c, b), then restores
	// the enables it suspended. Nothing written by fn is observable on the
	// line before fn returns. b is passed through so fn need not capture it.
	Disable(b Baud, fn func(c Configurator, b Baud))
}

// Pin is a pin function that can be routed to a peripheral.
type Pin interface {
	// Prepare routes the pin to its peripheral function.
	Prepare()
}

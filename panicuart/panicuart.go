// Package panicuart reports an unrecoverable fault over a serial port that it
// brings up from scratch, then hands the processor to a terminal action.
//
// The sequence is
//
//  1. clock bring-up (clock.BringUp)
//  2. peripheral acquisition and pin binding (serial.Bind)
//  3. scoped configuration (serial.Configure)
//  4. blocking CRLF report, flush, terminal action
//
// It runs at most once, does not allocate, never retries and
// ignores every write and flush error: there is nothing left to report them
// to. A fault raised inside Report is not handled.
//
// Programs do not call Report directly. cmd/faultgen renders a single
// faultEntry function for the host package from a registration descriptor;
// main then defers Catch(faultEntry).
package panicuart

import (
	"uartpanic/clock"
	"uartpanic/serial"
)

// reportWriter is the Writer of the single Report, kept off the heap.
var reportWriter Writer

// Terminal is the last thing that runs. It must not return on hardware.
type Terminal func()

// Setup binds the fault path to a clock domain, a peripheral, a pin pair,
// a baud rate and a terminal action.
//
// UART, TX and RX acquire raw instances; they are expected to be the
// platform's Steal functions, which bypass ownership tracking.
type Setup[P serial.Peripheral, T, R serial.Pin] struct {
	Clock       clock.Domain
	ClockConfig clock.Config

	UART func() P
	TX   func() T
	RX   func() R

	Baud uint32
	Idle Terminal // nil selects Halt
}

// Report runs the fault sequence for s and transmits p framed by one blank
// line on each side. It only returns if the terminal action does.
func Report[P serial.Peripheral, T, R serial.Pin](s Setup[P, T, R], p Payload) {
	hz := clock.BringUp(s.Clock, s.ClockConfig)

	h := serial.Bind(s.UART(), serial.Pins[T, R]{TX: s.TX(), RX: s.RX()})

	serial.Configure(&h, hz, s.Baud)

	w := &reportWriter
	*w = Writer{port: h.Peripheral}
	_ = w.WriteByte('\n')
	if p != nil {
		p.Render(w)
	}
	_ = w.WriteByte('\n')
	_ = w.WriteByte('\n')
	_ = w.Flush()

	idle := s.Idle
	if idle == nil {
		idle = Halt
	}
	idle()
}

// Catch recovers a panic and passes the recovered value to entry.
// It must be deferred directly:
//
//	defer panicuart.Catch(faultEntry)
func Catch(entry func(v any)) {
	if v := recover(); v != nil {
		entry(v)
	}
}

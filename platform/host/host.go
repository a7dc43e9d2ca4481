// Package host adapts any tinygo.org/x/drivers.UART, such as a machine.UART
// already configured by the board package or a console stand-in on a
// development machine, to the fault reporter's collaborator interfaces.
//
// It cannot force the clock tree or the pin mux: those are whatever the
// underlying UART was given. Use it where the platform packages do not
// apply.
package host

import (
	"tinygo.org/x/drivers"

	"uartpanic/clock"
	"uartpanic/serial"
)

// Clock is a clock.Domain with no gates. Its configured frequency is passed
// through unchanged.
type Clock struct{}

func (Clock) Gates() []clock.Gate             { return nil }
func (Clock) SetGate(clock.Gate, clock.State) {}
func (Clock) SelectSource(clock.Source)       {}
func (Clock) SetDivider(uint32)               {}

// Pin is a pin already routed by other code.
type Pin struct{}

func (Pin) Prepare() {}

// baudSetter is implemented by machine.UART.
type baudSetter interface {
	SetBaudRate(br uint32)
}

type flusher interface {
	Flush() error
}

// Port wraps a drivers.UART. Its baud encoding is the rate itself.
type Port struct {
	UART drivers.UART
}

// NewPort wraps u.
func NewPort(u drivers.UART) *Port { return &Port{UART: u} }

func (p *Port) Reset() {}

func (p *Port) ComputeBaud(_, rate uint32) serial.Baud { return serial.Baud(rate) }

func (p *Port) Disable(b serial.Baud, fn func(serial.Configurator, serial.Baud)) {
	fn(configurator{p}, b)
}

func (p *Port) Write(b []byte) (int, error) { return p.UART.Write(b) }

// Flush drains the UART if it can; machine.UART writes block until queued,
// so there is nothing more to wait for otherwise.
func (p *Port) Flush() error {
	if f, ok := p.UART.(flusher); ok {
		return f.Flush()
	}
	return nil
}

type configurator struct{ p *Port }

func (c configurator) SetBaud(b serial.Baud) {
	if s, ok := c.p.UART.(baudSetter); ok && b != 0 {
		s.SetBaudRate(uint32(b))
	}
}

func (configurator) EnableFIFO(serial.Watermark)  {}
func (configurator) DisableFIFO(serial.Direction) {}

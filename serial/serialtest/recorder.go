// Package serialtest provides instrumented clock and serial collaborators
// that record every call in order.
package serialtest

import (
	"bytes"
	"strconv"

	"uartpanic/clock"
	"uartpanic/serial"
)

// Trace is an ordered log of collaborator calls shared by the fakes below.
// Consecutive writes are coalesced into one "uart.write" entry; the bytes
// themselves go to UART.Out.
type Trace struct {
	Events []string
}

func (t *Trace) add(ev string) { t.Events = append(t.Events, ev) }

// Add appends a caller-defined event, e.g. the terminal action.
func (t *Trace) Add(ev string) { t.add(ev) }

// Index returns the position of the first event equal to ev, or -1.
func (t *Trace) Index(ev string) int {
	for i, e := range t.Events {
		if e == ev {
			return i
		}
	}
	return -1
}

// Clock is a recording clock.Domain with a configurable gate list.
type Clock struct {
	T         *Trace
	GateList  []clock.Gate
	Gated     map[clock.Gate]clock.State
	Source    clock.Source
	Divider   uint32
	Mutations int // source/divider writes made while any gate was on
}

// NewClock returns a Clock with n gates, all initially on.
func NewClock(t *Trace, n int) *Clock {
	c := &Clock{T: t, Gated: make(map[clock.Gate]clock.State)}
	for i := 0; i < n; i++ {
		g := clock.Gate(i)
		c.GateList = append(c.GateList, g)
		c.Gated[g] = clock.On
	}
	return c
}

func (c *Clock) Gates() []clock.Gate { return c.GateList }

func (c *Clock) SetGate(g clock.Gate, s clock.State) {
	c.Gated[g] = s
	c.T.add("clock.gate " + strconv.Itoa(int(g)) + " " + s.String())
}

func (c *Clock) SelectSource(src clock.Source) {
	c.noteMutation()
	c.Source = src
	c.T.add("clock.source " + strconv.Itoa(int(src)))
}

func (c *Clock) SetDivider(div uint32) {
	c.noteMutation()
	c.Divider = div
	c.T.add("clock.divider " + strconv.FormatUint(uint64(div), 10))
}

func (c *Clock) noteMutation() {
	for _, s := range c.Gated {
		if s == clock.On {
			c.Mutations++
			return
		}
	}
}

// AnyOn reports whether any gate is on.
func (c *Clock) AnyOn() bool {
	for _, s := range c.Gated {
		if s == clock.On {
			return true
		}
	}
	return false
}

// Pin is a recording serial.Pin.
type Pin struct {
	T    *Trace
	Name string
}

func (p Pin) Prepare() { p.T.add("pin.prepare " + p.Name) }

// UART is a recording serial.Peripheral. ComputeBaud returns rate/divisor of
// the input clock so tests can see which frequency reached it.
type UART struct {
	T   *Trace
	Out bytes.Buffer

	Enabled   bool
	Baud      serial.Baud
	WriteErr  error
	FlushErr  error
	Writes    int // Write calls
	Flushes   int
	WhileOff  int // writes attempted while disabled
	BaudCalls int
}

func (u *UART) Reset() {
	u.Enabled = true
	u.T.add("uart.reset")
}

func (u *UART) ComputeBaud(srcHz, rate uint32) serial.Baud {
	u.BaudCalls++
	if rate == 0 {
		return 0
	}
	return serial.Baud(srcHz / rate)
}

func (u *UART) Disable(b serial.Baud, fn func(serial.Configurator, serial.Baud)) {
	was := u.Enabled
	u.Enabled = false
	u.T.add("uart.disable")
	fn(configurator{u}, b)
	u.Enabled = was
	u.T.add("uart.enable")
}

func (u *UART) Write(p []byte) (int, error) {
	u.Writes++
	if !u.Enabled {
		u.WhileOff++
	}
	if n := len(u.T.Events); n == 0 || u.T.Events[n-1] != "uart.write" {
		u.T.add("uart.write")
	}
	u.Out.Write(p)
	return len(p), u.WriteErr
}

func (u *UART) Flush() error {
	u.Flushes++
	u.T.add("uart.flush")
	return u.FlushErr
}

type configurator struct{ u *UART }

func (c configurator) SetBaud(b serial.Baud) {
	c.guard()
	c.u.Baud = b
	c.u.T.add("cfg.baud " + strconv.FormatUint(uint64(b), 10))
}

func (c configurator) EnableFIFO(w serial.Watermark) {
	c.guard()
	c.u.T.add("cfg.fifo " + w.Dir.String() + " " + strconv.Itoa(int(w.Level)))
}

func (c configurator) DisableFIFO(d serial.Direction) {
	c.guard()
	c.u.T.add("cfg.nofifo " + d.String())
}

func (c configurator) guard() {
	if c.u.Enabled {
		c.u.T.add("cfg.while-enabled")
	}
}

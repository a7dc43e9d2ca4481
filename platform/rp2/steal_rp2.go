//go:build rp2040 || rp2350

package rp2

import (
	"device/rp"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"uartpanic/pl011"
)

// Static storage for the Steal functions; the fault path must not touch the
// heap.
var (
	periClock PeriClock
	uarts     [NumUART]UART
)

// StealClock returns clk_peri without coordinating with machine's clock
// setup.
func StealClock() *PeriClock {
	periClock.Ctrl = &rp.CLOCKS.CLK_PERI_CTRL
	return &periClock
}

// UART is a PL011 instance whose Reset also cycles the subsystem reset, so
// it works on an instance nothing has configured yet.
type UART struct {
	pl011.UART
	reset uint32 // RESETS mask
}

func (u *UART) Reset() {
	rp.RESETS.RESET.SetBits(u.reset)
	rp.RESETS.RESET.ClearBits(u.reset)
	for !rp.RESETS.RESET_DONE.HasBits(u.reset) {
	}
	u.UART.Reset()
}

// StealUART returns UARTn's registers, taken from the uartx instance,
// without checking ownership. Any uartx driver state is left stale.
func StealUART(n int) *UART {
	var hw *uartx.UART
	var mask uint32
	switch n {
	case 0:
		hw, mask = uartx.UART0, rp.RESETS_RESET_UART0
	case 1:
		hw, mask = uartx.UART1, rp.RESETS_RESET_UART1
	default:
		return nil
	}
	b := hw.Bus
	u := &uarts[n]
	u.Regs = pl011.Block{
		DR:   &b.UARTDR,
		FR:   &b.UARTFR,
		IBRD: &b.UARTIBRD,
		FBRD: &b.UARTFBRD,
		LCRH: &b.UARTLCR_H,
		CR:   &b.UARTCR,
		IFLS: &b.UARTIFLS,
		IMSC: &b.UARTIMSC,
		ICR:  &b.UARTICR,
	}
	u.reset = mask
	return u
}

// Pin is a GPIO switched to its UART function.
type Pin machine.Pin

func (p Pin) Prepare() {
	machine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinUART})
}

// StealPin returns GPIO n without checking ownership.
func StealPin(n int) Pin { return Pin(n) }

// StealLED returns GPIO n as an output for SOS.
func StealLED(n int) machine.Pin {
	p := machine.Pin(n)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return p
}

// Package pl011 drives an ARM PL011 UART (as found on RP2040 and RP2350) by
// polling, for use on the fault path.
package pl011

import (
	"uartpanic/serial"
	"uartpanic/x/mathx"
)

// Register is one 32-bit memory-mapped register.
// *volatile.Register32 satisfies it.
type Register interface {
	Get() uint32
	Set(v uint32)
}

// Block holds the PL011 registers the fault path touches.
type Block struct {
	DR   Register // 0x000
	FR   Register // 0x018
	IBRD Register // 0x024
	FBRD Register // 0x028
	LCRH Register // 0x02C
	CR   Register // 0x030
	IFLS Register // 0x034
	IMSC Register // 0x038
	ICR  Register // 0x044
}

const (
	frBUSY = 1 << 3
	frTXFF = 1 << 5

	lcrhFEN    = 1 << 4
	lcrhWLEN8  = 0b11 << 5
	crUARTEN   = 1 << 0
	crTXE      = 1 << 8
	crRXE      = 1 << 9
	crEnables  = crUARTEN | crTXE | crRXE
	iflsTXPos  = 0
	iflsRXPos  = 3
	iflsMask   = 0x7
	icrAll     = 0x7FF
	fifoDepth  = 32
	fbrdBits   = 6
	fbrdMask   = 1<<fbrdBits - 1
	maxDivisor = 65535
)

// ComputeBaud encodes the divisor srcHz/(16*rate) as IBRD<<6 | FBRD.
// The integer part is clamped to 1..65535.
func ComputeBaud(srcHz, rate uint32) serial.Baud {
	if rate == 0 {
		return serial.Baud(maxDivisor << fbrdBits)
	}
	div := 8 * uint64(srcHz) / uint64(rate) // divisor * 128
	ibrd := div >> 7
	fbrd := mathx.RoundDiv(div&0x7F, 2)
	if fbrd > fbrdMask {
		ibrd, fbrd = ibrd+1, 0
	}
	switch {
	case ibrd == 0:
		ibrd, fbrd = 1, 0
	case ibrd >= maxDivisor:
		ibrd, fbrd = maxDivisor, 0
	}
	return serial.Baud(ibrd<<fbrdBits | fbrd)
}

// Rate is the line rate produced by b from srcHz.
func Rate(srcHz uint32, b serial.Baud) uint32 {
	return uint32(mathx.DivOr(4*uint64(srcHz), uint64(b), 0))
}

// UART drives one PL011 block. It implements serial.Peripheral.
type UART struct {
	Regs Block

	rxOff bool // receiver stays off after the current Disable scope
}

// New wraps a register block.
func New(regs Block) *UART { return &UART{Regs: regs} }

// Reset disables the UART, masks and clears its interrupts, selects 8N1 and
// enables the UART with transmitter and receiver.
func (u *UART) Reset() {
	u.Regs.CR.Set(0)
	u.Regs.IMSC.Set(0)
	u.Regs.ICR.Set(icrAll)
	u.Regs.LCRH.Set(lcrhWLEN8)
	u.Regs.CR.Set(crEnables)
}

func (u *UART) ComputeBaud(srcHz, rate uint32) serial.Baud { return ComputeBaud(srcHz, rate) }

// Disable clears UARTEN, TXE and RXE, waits for UARTEN to read back clear,
// calls fn and restores the saved enables. RXE stays off if fn disabled the
// receive FIFO.
func (u *UART) Disable(b serial.Baud, fn func(serial.Configurator, serial.Baud)) {
	cr := u.Regs.CR.Get()
	saved := cr & crEnables
	u.Regs.CR.Set(cr &^ crEnables)
	for u.Regs.CR.Get()&crUARTEN != 0 {
	}
	u.rxOff = false
	fn(configurator{u}, b)
	if u.rxOff {
		saved &^= crRXE
	}
	u.Regs.CR.Set(u.Regs.CR.Get() | saved)
}

// Write blocks while the transmit FIFO is full.
func (u *UART) Write(p []byte) (int, error) {
	for _, b := range p {
		for u.Regs.FR.Get()&frTXFF != 0 {
		}
		u.Regs.DR.Set(uint32(b))
	}
	return len(p), nil
}

// Flush blocks until the transmitter is idle.
func (u *UART) Flush() error {
	for u.Regs.FR.Get()&frBUSY != 0 {
	}
	return nil
}

type configurator struct{ u *UART }

// SetBaud writes the divisor. LCR_H is rewritten because the PL011 only
// latches IBRD/FBRD on an LCR_H write.
func (c configurator) SetBaud(b serial.Baud) {
	r := c.u.Regs
	r.IBRD.Set(uint32(b) >> fbrdBits)
	r.FBRD.Set(uint32(b) & fbrdMask)
	r.LCRH.Set(r.LCRH.Get())
}

// EnableFIFO turns the shared FIFO on and sets the direction's interrupt
// level to the largest eighth-step not above w.Level.
func (c configurator) EnableFIFO(w serial.Watermark) {
	r := c.u.Regs
	pos := uint8(iflsTXPos)
	if w.Dir == serial.Rx {
		pos = iflsRXPos
	}
	v := r.IFLS.Get() &^ (iflsMask << pos)
	r.IFLS.Set(v | ifls(w.Level)<<pos)
	r.LCRH.Set(r.LCRH.Get() | lcrhFEN)
}

// DisableFIFO turns the FIFO off for Tx. The PL011 has one FIFO enable for
// both directions, so for Rx the receiver itself is left disabled instead.
func (c configurator) DisableFIFO(d serial.Direction) {
	if d == serial.Rx {
		c.u.rxOff = true
		return
	}
	r := c.u.Regs
	r.LCRH.Set(r.LCRH.Get() &^ lcrhFEN)
}

// ifls maps a watermark in words to an IFLS selector: 1/8, 1/4, 1/2, 3/4
// or 7/8 of the 32-entry FIFO.
func ifls(level uint8) uint32 {
	steps := [...]uint8{fifoDepth / 8, fifoDepth / 4, fifoDepth / 2, fifoDepth * 3 / 4, fifoDepth * 7 / 8}
	sel := uint32(0)
	for i, s := range steps {
		if level >= s {
			sel = uint32(i)
		}
	}
	return sel
}

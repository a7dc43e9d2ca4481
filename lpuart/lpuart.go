package lpuart

import (
	"uartpanic/serial"
	"uartpanic/x/mathx"
)

// LPUART drives one LPUART block by polling. It implements
// serial.Peripheral.
type LPUART struct {
	Regs Block
}

// New wraps a register block.
func New(regs Block) *LPUART { return &LPUART{Regs: regs} }

// Reset pulses the software reset and enables the transmitter and receiver.
func (u *LPUART) Reset() {
	setBits(u.Regs.GLOBAL, globalRST)
	clearBits(u.Regs.GLOBAL, globalRST)
	setBits(u.Regs.CTRL, ctrlTE|ctrlRE)
}

func (u *LPUART) ComputeBaud(srcHz, rate uint32) serial.Baud {
	return ComputeBaud(srcHz, rate).Register()
}

// Disable clears TE and RE, waits until both read back clear, calls fn and
// restores whichever of them were set.
func (u *LPUART) Disable(b serial.Baud, fn func(serial.Configurator, serial.Baud)) {
	ctrl := u.Regs.CTRL.Get()
	saved := ctrl & (ctrlTE | ctrlRE)
	u.Regs.CTRL.Set(ctrl &^ (ctrlTE | ctrlRE))
	for u.Regs.CTRL.Get()&(ctrlTE|ctrlRE) != 0 {
	}
	fn(configurator{u}, b)
	setBits(u.Regs.CTRL, saved)
}

// Write blocks until each byte is accepted by the transmit FIFO.
func (u *LPUART) Write(p []byte) (int, error) {
	for _, b := range p {
		for u.Regs.STAT.Get()&statTDRE == 0 {
		}
		u.Regs.DATA.Set(uint32(b))
	}
	return len(p), nil
}

// Flush blocks until the last stop bit has left the shifter.
func (u *LPUART) Flush() error {
	for u.Regs.STAT.Get()&statTC == 0 {
	}
	return nil
}

// fifoDepth decodes PARAM for one direction; an unreadable PARAM reads as a
// single-entry buffer.
func (u *LPUART) fifoDepth(d serial.Direction) uint32 {
	p := u.Regs.PARAM.Get()
	if d == serial.Rx {
		p >>= paramRXFIFOPos
	}
	return 1 << (p & paramTXFIFOMask & 0x7)
}

type configurator struct{ u *LPUART }

func (c configurator) SetBaud(b serial.Baud) {
	r := c.u.Regs.BAUD
	r.Set(r.Get()&^baudFieldsClear | uint32(b)&baudFieldsClear)
}

// EnableFIFO enables and flushes the FIFO for w.Dir and sets its watermark,
// clamped to one below the FIFO depth.
func (c configurator) EnableFIFO(w serial.Watermark) {
	level := mathx.Clamp(uint32(w.Level), 0, c.u.fifoDepth(w.Dir)-1)
	if w.Dir == serial.Rx {
		replace(c.u.Regs.WATER, level, waterMask, waterRXPos)
		c.fifo(fifoRXFE|fifoRXFLUSH, 0)
		return
	}
	replace(c.u.Regs.WATER, level, waterMask, waterTXPos)
	c.fifo(fifoTXFE|fifoTXFLUSH, 0)
}

func (c configurator) DisableFIFO(d serial.Direction) {
	if d == serial.Rx {
		c.fifo(0, fifoRXFE)
		return
	}
	c.fifo(0, fifoTXFE)
}

// fifo sets and clears FIFO bits without acknowledging the w1c flags.
func (c configurator) fifo(set, clr uint32) {
	r := c.u.Regs.FIFO
	r.Set((r.Get()&^fifoW1C)&^clr | set)
}

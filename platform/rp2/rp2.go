// Package rp2 binds the pl011 driver and the clk_peri clock to the RP2040
// and RP2350, taking the PL011 register blocks from tinygo-uartx.
//
// The pin function table and the clock domain logic build on any target;
// the Steal functions only build for rp2040 and rp2350.
package rp2

import "uartpanic/clock"

// XOSCHz is the crystal frequency on Pico boards.
const XOSCHz = 12_000_000

// NumUART is the number of PL011 instances.
const NumUART = 2

// clk_peri auxiliary sources.
const (
	SourceSys  clock.Source = 0
	SourceXOSC clock.Source = 4
)

// ClockConfig runs clk_peri from the crystal, so the UART works whatever
// state the PLLs were left in.
var ClockConfig = clock.Config{
	Source:   SourceXOSC,
	SourceHz: XOSCHz,
	Divider:  1,
}

// UARTFunc reports which UART instance GPIO n reaches with its UART
// function, and whether it carries TX (otherwise RX). CTS and RTS pins
// report ok=false.
func UARTFunc(n int) (uart int, tx bool, ok bool) {
	if n < 0 || n > 29 {
		return 0, false, false
	}
	switch n % 4 {
	case 0:
		tx = true
	case 1:
	default:
		return 0, false, false
	}
	return (n + 4) / 8 % 2, tx, true
}

// Register is one 32-bit memory-mapped register.
type Register interface {
	Get() uint32
	Set(v uint32)
}

const (
	periCtrlEnable  = 1 << 11
	periCtrlAuxPos  = 5
	periCtrlAuxMask = 0x7
	periGate        = clock.Gate(0)
)

// PeriClock is clk_peri as a clock domain. Its only gate is the ENABLE bit;
// it has no divider.
type PeriClock struct {
	Ctrl Register // CLOCKS.CLK_PERI_CTRL
}

var periGates = [1]clock.Gate{periGate}

func (c PeriClock) Gates() []clock.Gate { return periGates[:] }

func (c PeriClock) SetGate(g clock.Gate, s clock.State) {
	if g != periGate {
		return
	}
	v := c.Ctrl.Get()
	if s == clock.On {
		v |= periCtrlEnable
	} else {
		v &^= periCtrlEnable
	}
	c.Ctrl.Set(v)
}

func (c PeriClock) SelectSource(src clock.Source) {
	v := c.Ctrl.Get() &^ (periCtrlAuxMask << periCtrlAuxPos)
	c.Ctrl.Set(v | (uint32(src)&periCtrlAuxMask)<<periCtrlAuxPos)
}

// SetDivider does nothing: clk_peri always runs at its source frequency.
func (c PeriClock) SetDivider(uint32) {}

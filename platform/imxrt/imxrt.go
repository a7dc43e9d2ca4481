// Package imxrt binds the lpuart register model to the i.MX RT1062 as wired
// on Teensy 4.0 and 4.1.
//
// The address and pad tables build on any target; the Steal functions that
// turn them into registers only build for mimxrt1062.
package imxrt

import "uartpanic/lpuart"

// Base addresses.
const (
	CCMBase      = 0x400FC000
	IOMUXCBase   = 0x401F8000
	LPUART1Base  = 0x40184000
	LPUARTStride = 0x4000

	NumLPUART = 8

	// LEDPin is the Teensy pin wired to the on-board LED.
	LEDPin = 13
)

// LPUARTBase returns the base address of LPUARTn, n in 1..NumLPUART.
func LPUARTBase(n int) (uintptr, bool) {
	if n < 1 || n > NumLPUART {
		return 0, false
	}
	return LPUART1Base + uintptr(n-1)*LPUARTStride, true
}

// Pad describes how a board pin reaches an LPUART signal. Offsets are from
// IOMUXCBase.
type Pad struct {
	Pad    string // pad name, for humans
	LPUART int
	TX     bool // false: receive signal

	Mux   uintptr // SW_MUX_CTL_PAD offset
	Alt   uint32
	Daisy uintptr // SELECT_INPUT offset
	Input uint32
}

// teensyPads maps Teensy 4.x pin numbers to their LPUART pads.
var teensyPads = map[int]Pad{
	0:  {Pad: "GPIO_AD_B0_03", LPUART: 6, Mux: 0x0C8, Alt: 2, Daisy: 0x550, Input: 1},
	1:  {Pad: "GPIO_AD_B0_02", LPUART: 6, TX: true, Mux: 0x0C4, Alt: 2, Daisy: 0x554, Input: 1},
	14: {Pad: "GPIO_AD_B1_02", LPUART: 2, TX: true, Mux: 0x104, Alt: 2, Daisy: 0x530, Input: 1},
	15: {Pad: "GPIO_AD_B1_03", LPUART: 2, Mux: 0x108, Alt: 2, Daisy: 0x52C, Input: 1},
}

// PadFor returns the pad behind Teensy pin n.
func PadFor(n int) (Pad, bool) {
	p, ok := teensyPads[n]
	return p, ok
}

// IsLED reports whether Teensy pin n drives an on-board LED.
func IsLED(n int) bool { return n == LEDPin }

// ClockConfig is the UART root used for fault reports: the 24 MHz crystal
// divided by 3.
var ClockConfig = lpuart.ClockConfig

// PinAt builds an lpuart.Pin for pad p of the IOMUXC at base from a
// function mapping an address to a register.
func PinAt(p Pad, base uintptr, reg func(addr uintptr) lpuart.Register) lpuart.Pin {
	return lpuart.Pin{
		Mux:   reg(base + p.Mux),
		Alt:   p.Alt,
		Daisy: reg(base + p.Daisy),
		Input: p.Input,
	}
}

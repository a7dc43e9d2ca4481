package lpuart

import (
	"uartpanic/clock"
	"uartpanic/x/mathx"
)

// OscillatorHz is the frequency of the 24 MHz crystal oscillator.
const OscillatorHz = 24_000_000

// Divider is the UART_CLK_PODF divide used on the fault path.
const Divider = 3

// UART clock root sources (CSCDR1.UART_CLK_SEL).
const (
	SourcePLL3       clock.Source = 0 // pll3_sw_clk / 6 = 80 MHz
	SourceOscillator clock.Source = 1
)

// ClockConfig derives an 8 MHz UART root from the crystal oscillator,
// independent of the PLLs' state.
var ClockConfig = clock.Config{
	Source:   SourceOscillator,
	SourceHz: OscillatorHz,
	Divider:  Divider,
}

const (
	cscdr1PODFMask = 0x3F
	cscdr1SEL      = 1 << 6

	gateMask = 0b11
	gateOn   = 0b11
)

// CCM holds the registers of the CCM that feed the LPUARTs.
type CCM struct {
	CSCDR1 Register
	CCGR0  Register
	CCGR1  Register
	CCGR3  Register
	CCGR5  Register
	CCGR6  Register
}

// CCM register offsets.
const (
	OffCSCDR1 = 0x24
	OffCCGR0  = 0x68
	OffCCGR1  = 0x6C
	OffCCGR3  = 0x74
	OffCCGR5  = 0x7C
	OffCCGR6  = 0x80
)

// CCMAt builds the CCM at base from a function mapping an address to a
// register.
func CCMAt(base uintptr, reg func(addr uintptr) Register) CCM {
	return CCM{
		CSCDR1: reg(base + OffCSCDR1),
		CCGR0:  reg(base + OffCCGR0),
		CCGR1:  reg(base + OffCCGR1),
		CCGR3:  reg(base + OffCCGR3),
		CCGR5:  reg(base + OffCCGR5),
		CCGR6:  reg(base + OffCCGR6),
	}
}

type gateLoc struct {
	ccgr  uint8 // CCGR register number
	shift uint8
}

// uartGates locates the clock gate of LPUART1..8; gate n-1 is LPUARTn.
var uartGates = [8]gateLoc{
	{5, 24}, // LPUART1: CCGR5 CG12
	{0, 28}, // LPUART2: CCGR0 CG14
	{0, 12}, // LPUART3: CCGR0 CG6
	{1, 24}, // LPUART4: CCGR1 CG12
	{3, 2},  // LPUART5: CCGR3 CG1
	{3, 6},  // LPUART6: CCGR3 CG3
	{5, 26}, // LPUART7: CCGR5 CG13
	{6, 14}, // LPUART8: CCGR6 CG7
}

var allGates = [8]clock.Gate{0, 1, 2, 3, 4, 5, 6, 7}

// Gates returns every LPUART gate. All LPUARTs share the UART clock root,
// so all of them are gated while it changes.
func (c *CCM) Gates() []clock.Gate { return allGates[:] }

func (c *CCM) ccgr(n uint8) Register {
	switch n {
	case 0:
		return c.CCGR0
	case 1:
		return c.CCGR1
	case 3:
		return c.CCGR3
	case 5:
		return c.CCGR5
	default:
		return c.CCGR6
	}
}

func (c *CCM) SetGate(g clock.Gate, s clock.State) {
	if int(g) >= len(uartGates) {
		return
	}
	loc := uartGates[g]
	var v uint32
	if s == clock.On {
		v = gateOn
	}
	replace(c.ccgr(loc.ccgr), v, gateMask, loc.shift)
}

func (c *CCM) SelectSource(src clock.Source) {
	if src == SourceOscillator {
		setBits(c.CSCDR1, cscdr1SEL)
	} else {
		clearBits(c.CSCDR1, cscdr1SEL)
	}
}

// SetDivider programs UART_CLK_PODF; div is clamped to 1..64.
func (c *CCM) SetDivider(div uint32) {
	div = mathx.Clamp[uint32](div, 1, cscdr1PODFMask+1)
	replace(c.CSCDR1, div-1, cscdr1PODFMask, 0)
}

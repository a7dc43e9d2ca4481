//go:build mimxrt1062

package imxrt

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"uartpanic/lpuart"
)

func r32(addr uintptr) lpuart.Register {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

// Static storage for the Steal functions; the fault path must not touch the
// heap.
var (
	ccm     lpuart.CCM
	lpuarts [NumLPUART]lpuart.LPUART
)

// StealCCM returns the CCM as a clock domain, ignoring whatever else in the
// program believes it owns the clock tree.
func StealCCM() *lpuart.CCM {
	ccm = lpuart.CCMAt(CCMBase, r32)
	return &ccm
}

// StealLPUART returns LPUARTn without checking ownership. n outside
// 1..NumLPUART returns nil.
func StealLPUART(n int) *lpuart.LPUART {
	base, ok := LPUARTBase(n)
	if !ok {
		return nil
	}
	u := &lpuarts[n-1]
	u.Regs = lpuart.BlockAt(base, r32)
	return u
}

// StealPin returns Teensy pin n as an LPUART pad without checking ownership.
// A pin with no LPUART function returns a pin whose Prepare is a no-op.
func StealPin(n int) lpuart.Pin {
	p, ok := PadFor(n)
	if !ok {
		return lpuart.Pin{Mux: discard{}}
	}
	return PinAt(p, IOMUXCBase, r32)
}

type discard struct{}

func (discard) Get() uint32 { return 0 }
func (discard) Set(uint32)  {}

// StealLED returns Teensy pin n as an output for SOS. Only LEDPin has an LED;
// any other n returns machine.NoPin, unconfigured.
func StealLED(n int) machine.Pin {
	if !IsLED(n) {
		return machine.NoPin
	}
	p := machine.LED
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return p
}

package lpuart

import (
	"uartpanic/serial"
	"uartpanic/x/mathx"
)

// Oversampling and divider limits of the BAUD register.
const (
	MinOSR = 4
	MaxOSR = 32
	MinSBR = 1
	MaxSBR = 8191
)

// Baud is a decoded BAUD register setting: the line rate is
// srcHz / (OSR * SBR).
type Baud struct {
	OSR      uint32
	SBR      uint32
	BothEdge bool // required for OSR below 8
}

// ComputeBaud returns the setting whose rate is closest to rate for an input
// clock of srcHz. Ties go to the lowest OSR, then the lowest SBR.
// A zero rate or srcHz yields the slowest setting.
func ComputeBaud(srcHz, rate uint32) Baud {
	if rate == 0 || srcHz == 0 {
		return Baud{OSR: MaxOSR, SBR: MaxSBR}
	}
	best := Baud{}
	bestErr := ^uint32(0)
	for osr := uint32(MinOSR); osr <= MaxOSR; osr++ {
		// The achieved rate is non-increasing in SBR, so only the two
		// integers around the exact quotient can win.
		q := uint32(uint64(srcHz) / (uint64(rate) * uint64(osr)))
		for _, c := range [2]uint32{q, q + 1} {
			c = mathx.Clamp[uint32](c, MinSBR, MaxSBR)
			got := srcHz / (osr * c)
			sbr := lowestSBR(srcHz, osr, got)
			e := mathx.AbsDiff(got, rate)
			if e < bestErr || (e == bestErr && osr == best.OSR && sbr < best.SBR) {
				bestErr = e
				best = Baud{OSR: osr, SBR: sbr}
			}
		}
	}
	best.BothEdge = best.OSR < 8
	return best
}

// lowestSBR is the smallest SBR for which srcHz/(osr*SBR) truncates to got.
func lowestSBR(srcHz, osr, got uint32) uint32 {
	return uint32(uint64(srcHz)/(uint64(osr)*(uint64(got)+1))) + 1
}

// Rate is the line rate produced by b from srcHz.
func (b Baud) Rate(srcHz uint32) uint32 {
	return mathx.DivOr(srcHz, b.OSR*b.SBR, 0)
}

// Register encodes b as BAUD register bits.
func (b Baud) Register() serial.Baud {
	v := (b.OSR-1)&baudOSRMask<<baudOSRPos | b.SBR&baudSBRMask
	if b.BothEdge {
		v |= baudBOTHEDGE
	}
	return serial.Baud(v)
}

// DecodeBaud is the inverse of Baud.Register.
func DecodeBaud(v serial.Baud) Baud {
	return Baud{
		OSR:      uint32(v)>>baudOSRPos&baudOSRMask + 1,
		SBR:      uint32(v) & baudSBRMask,
		BothEdge: uint32(v)&baudBOTHEDGE != 0,
	}
}

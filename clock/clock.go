// Package clock forces a peripheral clock domain into a known state.
//
// BringUp is written for the fault path: it assumes nothing about earlier
// clock configuration, has no error path and touches no heap.
package clock

import "uartpanic/x/mathx"

// State is the requested state of a clock gate.
type State bool

const (
	Off State = false
	On  State = true
)

func (s State) String() string {
	if s {
		return "on"
	}
	return "off"
}

// Gate locates one gate of a domain. Its meaning belongs to the Domain.
type Gate uint16

// Source selects a clock source. Its meaning belongs to the Domain.
type Source uint8

// Domain is the register-level view of a gate-controlled clock domain.
type Domain interface {
	// Gates lists every gate feeding the peripheral's clock tree.
	Gates() []Gate
	SetGate(g Gate, s State)
	SelectSource(src Source)
	SetDivider(div uint32)
}

// Config describes the state BringUp forces onto a Domain.
type Config struct {
	Source   Source
	SourceHz uint32 // frequency of Source
	Divider  uint32 // 0 is treated as 1
}

func (c Config) divider() uint32 {
	if c.Divider == 0 {
		return 1
	}
	return c.Divider
}

// Frequency is the peripheral input frequency produced by c.
func (c Config) Frequency() uint32 {
	return mathx.DivOr(c.SourceHz, c.divider(), c.SourceHz)
}

// BringUp turns every gate off, selects cfg's source and divider, turns every
// gate back on and returns the resulting input frequency.
// The source and divider never change while a gate is on.
func BringUp(d Domain, cfg Config) uint32 {
	gates := d.Gates()
	for _, g := range gates {
		d.SetGate(g, Off)
	}
	d.SelectSource(cfg.Source)
	d.SetDivider(cfg.divider())
	for _, g := range gates {
		d.SetGate(g, On)
	}
	return cfg.Frequency()
}

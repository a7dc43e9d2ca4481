package lpuart

// IOMUXC mux register bits.
const (
	muxModeMask = 0x7
	muxSION     = 1 << 4
)

// Pin routes a pad to an LPUART signal through the IOMUXC.
type Pin struct {
	Mux   Register // SW_MUX_CTL_PAD_*
	Alt   uint32   // ALT mode selecting the LPUART signal
	Daisy Register // *_SELECT_INPUT; nil when the signal has a single pad
	Input uint32   // daisy value selecting this pad
}

// Prepare selects the pad's LPUART function with input forced on and points
// the daisy chain at it.
func (p Pin) Prepare() {
	p.Mux.Set(p.Alt&muxModeMask | muxSION)
	if p.Daisy != nil {
		p.Daisy.Set(p.Input)
	}
}

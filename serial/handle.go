package serial

// TxWatermarkLevel is the transmit FIFO watermark used for fault reports.
// Deep enough to avoid a stall per byte, no interrupts needed.
const TxWatermarkLevel = 4

// Pins is a transmit/receive pin pair.
type Pins[T, R Pin] struct {
	TX T
	RX R
}

// Handle owns one raw peripheral and its bound pins.
type Handle[P Peripheral, T, R Pin] struct {
	Peripheral P
	Pins       Pins[T, R]
}

// Bind routes pins to inst, resets inst and returns the handle.
// No data is transferred.
func Bind[P Peripheral, T, R Pin](inst P, pins Pins[T, R]) Handle[P, T, R] {
	pins.TX.Prepare()
	pins.RX.Prepare()
	inst.Reset()
	return Handle[P, T, R]{Peripheral: inst, Pins: pins}
}

// Configure computes the baud encoding for (srcHz, rate) once and applies it
// with the transmit FIFO enabled and the receive FIFO disabled, all inside a
// single disable scope. It returns the applied encoding.
func Configure[P Peripheral, T, R Pin](h *Handle[P, T, R], srcHz, rate uint32) Baud {
	b := h.Peripheral.ComputeBaud(srcHz, rate)
	h.Peripheral.Disable(b, apply)
	return b
}

func apply(c Configurator, b Baud) {
	c.SetBaud(b)
	c.EnableFIFO(TxWatermark(TxWatermarkLevel))
	c.DisableFIFO(Rx)
}

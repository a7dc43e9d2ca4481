// Package lpuart models the i.MX RT UART clock root (CCM) and the LPUART
// block over plain 32-bit registers, for use on the fault path.
//
// Registers are reached through the Register interface so the same code
// drives *volatile.Register32 on hardware and a fake register file in tests.
package lpuart

// Register is one 32-bit memory-mapped register.
// *volatile.Register32 satisfies it.
type Register interface {
	Get() uint32
	Set(v uint32)
}

func setBits(r Register, m uint32)   { r.Set(r.Get() | m) }
func clearBits(r Register, m uint32) { r.Set(r.Get() &^ m) }

// replace writes v into the field (mask << pos) of r.
func replace(r Register, v, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | (v&mask)<<pos)
}

// Block is one LPUART register block, in address order.
type Block struct {
	VERID  Register // 0x00
	PARAM  Register // 0x04
	GLOBAL Register // 0x08
	PINCFG Register // 0x0C
	BAUD   Register // 0x10
	STAT   Register // 0x14
	CTRL   Register // 0x18
	DATA   Register // 0x1C
	MATCH  Register // 0x20
	MODIR  Register // 0x24
	FIFO   Register // 0x28
	WATER  Register // 0x2C
}

// Register offsets from an LPUART base address.
const (
	OffVERID  = 0x00
	OffPARAM  = 0x04
	OffGLOBAL = 0x08
	OffPINCFG = 0x0C
	OffBAUD   = 0x10
	OffSTAT   = 0x14
	OffCTRL   = 0x18
	OffDATA   = 0x1C
	OffMATCH  = 0x20
	OffMODIR  = 0x24
	OffFIFO   = 0x28
	OffWATER  = 0x2C
)

// BlockAt builds the Block at base from a function mapping an address to a
// register.
func BlockAt(base uintptr, reg func(addr uintptr) Register) Block {
	return Block{
		VERID:  reg(base + OffVERID),
		PARAM:  reg(base + OffPARAM),
		GLOBAL: reg(base + OffGLOBAL),
		PINCFG: reg(base + OffPINCFG),
		BAUD:   reg(base + OffBAUD),
		STAT:   reg(base + OffSTAT),
		CTRL:   reg(base + OffCTRL),
		DATA:   reg(base + OffDATA),
		MATCH:  reg(base + OffMATCH),
		MODIR:  reg(base + OffMODIR),
		FIFO:   reg(base + OffFIFO),
		WATER:  reg(base + OffWATER),
	}
}

// Bit fields.
const (
	globalRST = 1 << 1

	paramTXFIFOMask = 0xFF // log2 of transmit FIFO depth
	paramRXFIFOPos  = 8

	baudSBRMask     = 0x1FFF
	baudBOTHEDGE    = 1 << 17
	baudOSRPos      = 24
	baudOSRMask     = 0x1F
	baudFieldsClear = baudSBRMask | baudBOTHEDGE | baudOSRMask<<baudOSRPos

	statTC   = 1 << 22
	statTDRE = 1 << 23

	ctrlRE = 1 << 18
	ctrlTE = 1 << 19

	fifoRXFE    = 1 << 3
	fifoTXFE    = 1 << 7
	fifoRXFLUSH = 1 << 14
	fifoTXFLUSH = 1 << 15
	fifoW1C     = 1<<16 | 1<<17 // RXUF, TXOF

	waterTXPos = 0
	waterRXPos = 16
	waterMask  = 0xFF
)

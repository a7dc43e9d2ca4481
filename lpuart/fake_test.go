package lpuart

import "fmt"

// regFile is a fake register space. Writes are logged as "NAME=0xVALUE".
type regFile struct {
	log  []string
	regs map[string]*fakeReg
}

type fakeReg struct {
	f    *regFile
	name string
	v    uint32
}

func (r *fakeReg) Get() uint32 { return r.v }

func (r *fakeReg) Set(v uint32) {
	r.v = v
	r.f.log = append(r.f.log, fmt.Sprintf("%s=%#x", r.name, v))
}

func newRegFile() *regFile { return &regFile{regs: make(map[string]*fakeReg)} }

func (f *regFile) reg(name string) *fakeReg {
	r, ok := f.regs[name]
	if !ok {
		r = &fakeReg{f: f, name: name}
		f.regs[name] = r
	}
	return r
}

var blockNames = map[uintptr]string{
	OffVERID: "VERID", OffPARAM: "PARAM", OffGLOBAL: "GLOBAL", OffPINCFG: "PINCFG",
	OffBAUD: "BAUD", OffSTAT: "STAT", OffCTRL: "CTRL", OffDATA: "DATA",
	OffMATCH: "MATCH", OffMODIR: "MODIR", OffFIFO: "FIFO", OffWATER: "WATER",
}

var ccmNames = map[uintptr]string{
	OffCSCDR1: "CSCDR1", OffCCGR0: "CCGR0", OffCCGR1: "CCGR1",
	OffCCGR3: "CCGR3", OffCCGR5: "CCGR5", OffCCGR6: "CCGR6",
}

// newTestUART returns an LPUART over a fake block that reports a 4-deep
// FIFO and an always-ready transmitter.
func newTestUART() (*LPUART, *regFile) {
	f := newRegFile()
	u := New(BlockAt(0, func(off uintptr) Register { return f.reg(blockNames[off]) }))
	f.reg("PARAM").v = 0x0202
	f.reg("STAT").v = statTDRE | statTC
	f.reg("BAUD").v = 0x0F00_0004 // reset value: OSR 16, SBR 4
	return u, f
}

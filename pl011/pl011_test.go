package pl011

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"uartpanic/serial"
)

type fakeReg struct {
	name string
	v    uint32
	log  *[]string
}

func (r *fakeReg) Get() uint32 { return r.v }
func (r *fakeReg) Set(v uint32) {
	r.v = v
	*r.log = append(*r.log, fmt.Sprintf("%s=%#x", r.name, v))
}

type rig struct {
	log                                     []string
	dr, fr, ibrd, fbrd, lcrh, cr, ifls, ims *fakeReg
	icr                                     *fakeReg
	u                                       *UART
}

func newRig() *rig {
	r := &rig{}
	mk := func(n string) *fakeReg { return &fakeReg{name: n, log: &r.log} }
	r.dr, r.fr, r.ibrd, r.fbrd = mk("DR"), mk("FR"), mk("IBRD"), mk("FBRD")
	r.lcrh, r.cr, r.ifls, r.ims, r.icr = mk("LCRH"), mk("CR"), mk("IFLS"), mk("IMSC"), mk("ICR")
	r.u = New(Block{DR: r.dr, FR: r.fr, IBRD: r.ibrd, FBRD: r.fbrd, LCRH: r.lcrh,
		CR: r.cr, IFLS: r.ifls, IMSC: r.ims, ICR: r.icr})
	return r
}

func TestComputeBaud(t *testing.T) {
	b := ComputeBaud(12_000_000, 115200)
	require.Equal(t, serial.Baud(6<<6|33), b)
	require.InDelta(t, 115200, Rate(12_000_000, b), 115200*0.01)

	require.Equal(t, b, ComputeBaud(12_000_000, 115200), "pure")
	require.Equal(t, serial.Baud(1<<6), ComputeBaud(12_000_000, 4_000_000), "divisor floor")
	require.Equal(t, serial.Baud(65535<<6), ComputeBaud(125_000_000, 10), "divisor ceiling")
	require.Equal(t, serial.Baud(65535<<6), ComputeBaud(12_000_000, 0))
}

func TestComputeBaudFractionCarry(t *testing.T) {
	// div*128 = 8*srcHz/rate ends in 0x7F: the fraction rounds up to 64 and
	// carries into the integer part.
	b := ComputeBaud(255*16, 8*16)
	require.Equal(t, serial.Baud(2<<6), b)
}

func TestResetSequence(t *testing.T) {
	r := newRig()
	r.u.Reset()
	require.Equal(t, []string{"CR=0x0", "IMSC=0x0", "ICR=0x7ff", "LCRH=0x60", "CR=0x301"}, r.log)
}

func TestDisableScopeLeavesReceiverOff(t *testing.T) {
	r := newRig()
	r.u.Reset()
	r.log = nil

	var inside uint32
	r.u.Disable(ComputeBaud(12_000_000, 115200), func(c serial.Configurator, b serial.Baud) {
		inside = r.cr.v
		c.SetBaud(b)
		c.EnableFIFO(serial.TxWatermark(4))
		c.DisableFIFO(serial.Rx)
	})

	require.Zero(t, inside&crEnables)
	require.Equal(t, []string{
		"CR=0x0",
		"IBRD=0x6", "FBRD=0x21", "LCRH=0x60",
		"IFLS=0x0", "LCRH=0x70",
		"CR=0x101",
	}, r.log)
}

func TestDisableRestoresEnables(t *testing.T) {
	r := newRig()
	r.cr.v = crEnables
	r.u.Disable(0, func(serial.Configurator, serial.Baud) {})
	require.Equal(t, uint32(crEnables), r.cr.v)
}

func TestDisableFIFOTx(t *testing.T) {
	r := newRig()
	r.lcrh.v = lcrhFEN | lcrhWLEN8
	c := configurator{u: r.u}
	c.DisableFIFO(serial.Tx)
	require.Equal(t, uint32(lcrhWLEN8), r.lcrh.v)
	require.False(t, r.u.rxOff)
}

func TestIFLSLevels(t *testing.T) {
	for level, want := range map[uint8]uint32{0: 0, 4: 0, 8: 1, 15: 1, 16: 2, 24: 3, 28: 4, 32: 4} {
		require.Equal(t, want, ifls(level), "level %d", level)
	}

	r := newRig()
	c := configurator{u: r.u}
	c.EnableFIFO(serial.RxWatermark(16))
	require.Equal(t, uint32(2<<iflsRXPos), r.ifls.v)
}

func TestWriteAndFlushPoll(t *testing.T) {
	r := newRig()
	full := 2
	r.u.Regs.FR = frFunc(func() uint32 {
		if full > 0 {
			full--
			return frTXFF | frBUSY
		}
		return 0
	})

	n, err := r.u.Write([]byte{'h', 'i'})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []string{"DR=0x68", "DR=0x69"}, r.log)
	require.Zero(t, full)

	full = 1
	require.NoError(t, r.u.Flush())
	require.Zero(t, full)
}

type frFunc func() uint32

func (f frFunc) Get() uint32 { return f() }
func (f frFunc) Set(uint32)  {}

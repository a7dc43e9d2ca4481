package panicuart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type named struct{}

func (named) String() string { return "named value" }

func render(p Payload) string {
	var b bufPort
	p.Render(NewWriter(&b))
	return b.String()
}

func TestRecoveredRendering(t *testing.T) {
	cases := []struct {
		v    any
		want string
	}{
		{nil, "panicked: nil"},
		{"index out of range", "panicked: index out of range"},
		{errors.New("bad\nthing"), "panicked: bad\r\nthing"},
		{named{}, "panicked: named value"},
		{true, "panicked: true"},
		{-7, "panicked: -7"},
		{int8(-8), "panicked: -8"},
		{uint16(65535), "panicked: 65535"},
		{uint64(1) << 40, "panicked: 1099511627776"},
		{uintptr(0x20000100), "panicked: 0x20000100"},
		{3.5, "panicked: (unprintable value)"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, render(Recovered{Value: c.v}))
	}
}

func TestPanickedRendersLikeRecovered(t *testing.T) {
	require.Equal(t, "panicked: boom", render(Panicked("boom")))
	require.Equal(t, "panicked: 12", render(Panicked(12)))
}

func TestRecoveredDoesNotAllocate(t *testing.T) {
	var p countPort
	w := NewWriter(&p)
	err := errors.New("stack overflow")
	allocs := testing.AllocsPerRun(100, func() {
		Panicked("index out of range").Render(w)
		Panicked(err).Render(w)
		Panicked(-42).Render(w)
		Panicked(uintptr(0x2000_0100)).Render(w)
		Recovered{Value: err}.Render(w)
	})
	require.Zero(t, allocs)
}

func TestFaultRendering(t *testing.T) {
	f := Fault{Reason: "HardFault", PC: 0x6000_1234, LR: 0xffff_fff9, SP: 0x2000_7fe0}
	require.Equal(t,
		"fault: HardFault\r\n  pc 0x60001234\r\n  lr 0xfffffff9\r\n  sp 0x20007fe0",
		render(f))

	f.Addr = 0x4
	require.Contains(t, render(f), "\r\n  addr 0x00000004")
}

func TestPayloadFuncAndText(t *testing.T) {
	require.Equal(t, "x\r\ny", render(Text("x\ny")))
	require.Equal(t, "code 9", render(PayloadFunc(func(w *Writer) {
		_, _ = w.WriteString("code ")
		w.WriteUint(9)
	})))
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"uartpanic/errcode"
	"uartpanic/panicuart"
	"uartpanic/types"
)

func newSim(t *testing.T, board string) (*Sim, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s, err := NewSim(board, &out)
	require.NoError(t, err)
	return s, &out
}

func TestReportTrace(t *testing.T) {
	s, _ := newSim(t, "teensy40")
	r := s.Report(panicuart.Text("boom"))

	require.Equal(t, []string{
		"clock.gate 0 off",
		"clock.source 0",
		"clock.divider 1",
		"clock.gate 0 on",
		"pin.prepare P1",
		"pin.prepare P0",
		"uart.reset",
		"uart.disable",
		"cfg.baud 69", // 8 MHz / 115200
		"cfg.fifo tx 4",
		"cfg.nofifo rx",
		"uart.enable",
		"uart.write",
		"uart.flush",
		"idle halt",
	}, r.Trace)
	require.Equal(t, "\r\nboom\r\n\r\n\r\n", r.Output)
}

func TestPanicGoesThroughCatch(t *testing.T) {
	s, _ := newSim(t, "pico")
	r := s.Panic(func() {
		var m map[string]int
		m["x"] = 1
	})
	require.True(t, strings.HasPrefix(r.Output, "\r\npanicked: "), r.Output)
	require.Contains(t, r.Output, "nil map")
	require.Equal(t, "idle sos", r.Trace[len(r.Trace)-1])
}

func TestPanicWithoutPanicReportsNothing(t *testing.T) {
	s, _ := newSim(t, "pico")
	r := s.Panic(func() {})
	require.Empty(t, r.Trace)
	require.Empty(t, r.Output)
}

func TestEmitWritesFramedText(t *testing.T) {
	s, out := newSim(t, "teensy40")
	s.Emit(panicuart.Text("a\nb"))
	require.Equal(t, "\r\na\r\nb\r\n\r\n", out.String())
}

func TestBaud(t *testing.T) {
	s, _ := newSim(t, "pico")
	bi, err := s.Baud(115200)
	require.NoError(t, err)
	require.Equal(t, uint32(6<<6|33), uint32(bi.Encoded))
	require.Equal(t, uint32(115107), bi.Achieved)
	require.Zero(t, bi.ErrorPct)

	_, err = s.Baud(0)
	require.Equal(t, errcode.InvalidParams, errcode.Of(err))
}

func TestSetKeepsOldRegistrationOnError(t *testing.T) {
	s, _ := newSim(t, "teensy40")
	reg := s.Res.Reg
	reg.TX = "P14"
	require.Equal(t, errcode.UnknownPin, errcode.Of(s.Set(reg)))
	require.Equal(t, "P1", s.Res.Reg.TX)

	require.NoError(t, s.Set(types.FaultRegistration{Board: "teensy40", UART: "LPUART2", TX: "P14", RX: "P15"}))
	require.Equal(t, 2, s.Res.UART)
}

func TestUnknownBoard(t *testing.T) {
	_, err := NewSim("uno", &bytes.Buffer{})
	require.Equal(t, errcode.UnknownBoard, errcode.Of(err))
}

func TestParseScript(t *testing.T) {
	cmds, err := ParseScript(strings.NewReader(`
# comment
board pico
report "hello world" again

set baud 9600
`))
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"board", "pico"},
		{"report", "hello world", "again"},
		{"set", "baud", "9600"},
	}, cmds)
}

func TestParseScriptBadQuote(t *testing.T) {
	_, err := ParseScript(strings.NewReader("report \"open\n"))
	require.Equal(t, errcode.InvalidParams, errcode.Of(err))
}

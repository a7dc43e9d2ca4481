package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"uartpanic/clock"
	"uartpanic/config"
	"uartpanic/errcode"
	"uartpanic/panicuart"
	"uartpanic/platform/host"
	"uartpanic/serial"
	"uartpanic/serial/serialtest"
	"uartpanic/types"
)

// Sim runs the fault sequence of one board registration against
// instrumented collaborators.
type Sim struct {
	Res config.Resolved
	Out io.Writer // receives "emit" output
}

// NewSim resolves the default registration of board.
func NewSim(board string, out io.Writer) (*Sim, error) {
	s := &Sim{Out: out}
	return s, s.SetBoard(board)
}

// SetBoard switches to the default registration of board.
func (s *Sim) SetBoard(board string) error {
	reg, err := config.Default(board)
	if err != nil {
		return err
	}
	return s.Set(reg)
}

// Set switches to reg.
func (s *Sim) Set(reg types.FaultRegistration) error {
	res, err := config.Resolve(reg)
	if err != nil {
		return err
	}
	s.Res = res
	return nil
}

// Run is the outcome of one simulated report.
type Run struct {
	Trace  []string
	Output string
	Baud   serial.Baud
}

func (s *Sim) setup(tr *serialtest.Trace, u *serialtest.UART) panicuart.Setup[*serialtest.UART, serialtest.Pin, serialtest.Pin] {
	return panicuart.Setup[*serialtest.UART, serialtest.Pin, serialtest.Pin]{
		Clock:       serialtest.NewClock(tr, 1),
		ClockConfig: clock.Config{SourceHz: s.Res.Board.SourceHz, Divider: 1},
		UART:        func() *serialtest.UART { return u },
		TX:          func() serialtest.Pin { return serialtest.Pin{T: tr, Name: s.Res.Reg.TX} },
		RX:          func() serialtest.Pin { return serialtest.Pin{T: tr, Name: s.Res.Reg.RX} },
		Baud:        s.Res.Baud,
		Idle:        func() { tr.Add("idle " + s.Res.Reg.Idle) },
	}
}

// Report runs the sequence with p as payload.
func (s *Sim) Report(p panicuart.Payload) Run {
	tr := &serialtest.Trace{}
	u := &serialtest.UART{T: tr}
	panicuart.Report(s.setup(tr, u), p)
	return Run{Trace: tr.Events, Output: u.Out.String(), Baud: u.Baud}
}

// Panic runs body with the fault entry point deferred, as a program's main
// would, and reports whatever it panics with.
func (s *Sim) Panic(body func()) (run Run) {
	tr := &serialtest.Trace{}
	u := &serialtest.UART{T: tr}
	entry := func(v any) {
		panicuart.Report(s.setup(tr, u), panicuart.Panicked(v))
	}
	func() {
		defer panicuart.Catch(entry)
		body()
	}()
	return Run{Trace: tr.Events, Output: u.Out.String(), Baud: u.Baud}
}

// Emit sends the framed report of p to Out through the host adapter, as a
// board whose UART is already set up would.
func (s *Sim) Emit(p panicuart.Payload) {
	con := &host.Console{W: s.Out}
	panicuart.Report(panicuart.Setup[*host.Port, host.Pin, host.Pin]{
		Clock:       host.Clock{},
		ClockConfig: clock.Config{SourceHz: s.Res.Board.SourceHz},
		UART:        func() *host.Port { return host.NewPort(con) },
		TX:          func() host.Pin { return host.Pin{} },
		RX:          func() host.Pin { return host.Pin{} },
		Baud:        s.Res.Baud,
		Idle:        func() {},
	}, p)
}

// BaudInfo describes how the board would realise rate.
type BaudInfo struct {
	Rate     uint32
	Encoded  serial.Baud
	Achieved uint32
	ErrorPct uint32
}

// Baud computes the board's encoding for rate without touching the
// registration.
func (s *Sim) Baud(rate uint32) (BaudInfo, error) {
	if rate == 0 {
		return BaudInfo{}, errcode.New(errcode.InvalidParams, "faultsim.baud", "rate 0")
	}
	r := s.Res
	r.Baud = rate
	r.Encoded = r.Board.ComputeBaud(r.Board.SourceHz, rate)
	r.Achieved = r.Board.Rate(r.Board.SourceHz, r.Encoded)
	return BaudInfo{Rate: rate, Encoded: r.Encoded, Achieved: r.Achieved, ErrorPct: r.ErrorPct()}, nil
}

// ParseScript splits a script into commands, one per line. Blank lines and
// lines starting with '#' are skipped; words follow shell quoting rules.
func ParseScript(r io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var cmds [][]string
	for i, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := shlex.Split(line)
		if err != nil {
			return nil, errcode.Wrap(errcode.InvalidParams, "faultsim.script:"+strconv.Itoa(i+1), err)
		}
		if len(words) > 0 {
			cmds = append(cmds, words)
		}
	}
	return cmds, nil
}

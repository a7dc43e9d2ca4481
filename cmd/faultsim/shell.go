package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"uartpanic/errcode"
	"uartpanic/panicuart"
)

const simKey = "$sim"

func simFrom(c *ishell.Context) *Sim {
	return c.Get(simKey).(*Sim)
}

func printRun(c *ishell.Context, r Run) {
	for _, ev := range r.Trace {
		c.Println("  " + ev)
	}
	c.Println("out: " + strconv.Quote(r.Output))
}

var (
	// BoardCmd shows or switches the board.
	BoardCmd = ishell.Cmd{
		Name: "board",
		Help: "[NAME]",
		Func: func(c *ishell.Context) {
			s := simFrom(c)
			if len(c.Args) > 0 {
				if err := s.SetBoard(c.Args[0]); err != nil {
					c.Err(err)
					return
				}
				c.SetPrompt(s.Res.Board.Name + " > ")
			}
			r := s.Res.Reg
			c.Printf("%s: %s tx=%s rx=%s baud=%d idle=%s\n", s.Res.Board.Name, r.UART, r.TX, r.RX, s.Res.Baud, r.Idle)
		},
	}

	// SetCmd changes one field of the registration.
	SetCmd = ishell.Cmd{
		Name: "set",
		Help: "uart|tx|rx|baud|idle|led VALUE",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(errcode.New(errcode.InvalidParams, "set", "want FIELD VALUE"))
				return
			}
			s := simFrom(c)
			reg := s.Res.Reg
			v := c.Args[1]
			switch strings.ToLower(c.Args[0]) {
			case "uart":
				reg.UART = v
			case "tx":
				reg.TX = v
			case "rx":
				reg.RX = v
			case "idle":
				reg.Idle = v
			case "led":
				reg.LED = v
			case "baud":
				n, err := strconv.ParseUint(v, 10, 32)
				if err != nil {
					c.Err(errcode.Wrap(errcode.InvalidParams, "set", err))
					return
				}
				reg.Baud = uint32(n)
			default:
				c.Err(errcode.New(errcode.InvalidParams, "set", "unknown field "+c.Args[0]))
				return
			}
			if err := s.Set(reg); err != nil {
				c.Err(err)
			}
		},
	}

	// BaudCmd shows how the board realises a rate.
	BaudCmd = ishell.Cmd{
		Name: "baud",
		Help: "RATE",
		Func: func(c *ishell.Context) {
			s := simFrom(c)
			rate := uint64(s.Res.Baud)
			if len(c.Args) > 0 {
				var err error
				if rate, err = strconv.ParseUint(c.Args[0], 10, 32); err != nil {
					c.Err(errcode.Wrap(errcode.InvalidParams, "baud", err))
					return
				}
			}
			bi, err := s.Baud(uint32(rate))
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("%d baud: reg=0x%08x achieved=%d error=%d%%\n", bi.Rate, uint32(bi.Encoded), bi.Achieved, bi.ErrorPct)
		},
	}

	// ReportCmd runs the fault sequence and prints the call trace.
	ReportCmd = ishell.Cmd{
		Name:    "report",
		Aliases: []string{"r"},
		Help:    "TEXT...",
		Func: func(c *ishell.Context) {
			printRun(c, simFrom(c).Report(panicuart.Text(strings.Join(c.Args, " "))))
		},
	}

	// PanicCmd panics with a message under Catch.
	PanicCmd = ishell.Cmd{
		Name: "panic",
		Help: "TEXT...",
		Func: func(c *ishell.Context) {
			msg := strings.Join(c.Args, " ")
			printRun(c, simFrom(c).Panic(func() { panic(errors.New(msg)) }))
		},
	}

	// EmitCmd writes the framed report to standard output.
	EmitCmd = ishell.Cmd{
		Name: "emit",
		Help: "TEXT...",
		Func: func(c *ishell.Context) {
			simFrom(c).Emit(panicuart.Text(strings.Join(c.Args, " ")))
		},
	}

	commands = []*ishell.Cmd{
		&BoardCmd,
		&SetCmd,
		&BaudCmd,
		&ReportCmd,
		&PanicCmd,
		&EmitCmd,
	}
)

// NewShell returns an interactive shell driving s.
func NewShell(s *Sim) *ishell.Shell {
	sh := ishell.New()
	sh.Set(simKey, s)
	sh.SetPrompt(s.Res.Board.Name + " > ")
	for _, cmd := range commands {
		sh.AddCmd(cmd)
	}
	return sh
}

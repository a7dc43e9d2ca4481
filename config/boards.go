package config

import (
	"uartpanic/lpuart"
	"uartpanic/pl011"
	"uartpanic/platform/imxrt"
	"uartpanic/platform/rp2"
	"uartpanic/serial"
)

// Board describes what a target offers the fault reporter.
type Board struct {
	Name string

	// Generated code: build constraint, platform import path and name, and
	// the Go types of the peripheral and its pins.
	BuildTag   string
	Platform   string
	PkgName    string
	Imports    []string
	Peripheral string
	PinType    string
	StealClock string
	StealUART  string

	UARTPrefix string // "LPUART", "UART"
	MinUART    int
	MaxUART    int
	PinPrefix  string // "P", "GP"

	// PinFunc resolves a pin number to the UART and direction it carries.
	PinFunc func(n int) (uart int, tx bool, ok bool)
	// LED reports whether pin n can drive the SOS terminal action.
	LED func(n int) bool

	SourceHz    uint32
	ComputeBaud func(srcHz, rate uint32) serial.Baud
	Rate        func(srcHz uint32, b serial.Baud) uint32
}

var boards = map[string]*Board{
	"teensy40": {
		Name:       "teensy40",
		BuildTag:   "mimxrt1062",
		Platform:   "uartpanic/platform/imxrt",
		PkgName:    "imxrt",
		Imports:    []string{"uartpanic/lpuart"},
		Peripheral: "*lpuart.LPUART",
		PinType:    "lpuart.Pin",
		StealClock: "StealCCM",
		StealUART:  "StealLPUART",
		UARTPrefix: "LPUART",
		MinUART:    1,
		MaxUART:    imxrt.NumLPUART,
		PinPrefix:  "P",
		PinFunc: func(n int) (int, bool, bool) {
			p, ok := imxrt.PadFor(n)
			return p.LPUART, p.TX, ok
		},
		LED:         imxrt.IsLED,
		SourceHz:    imxrt.ClockConfig.Frequency(),
		ComputeBaud: func(src, rate uint32) serial.Baud { return lpuart.ComputeBaud(src, rate).Register() },
		Rate:        func(src uint32, b serial.Baud) uint32 { return lpuart.DecodeBaud(b).Rate(src) },
	},
	"pico": {
		Name:        "pico",
		BuildTag:    "rp2040 || rp2350",
		Platform:    "uartpanic/platform/rp2",
		PkgName:     "rp2",
		Peripheral:  "*rp2.UART",
		PinType:     "rp2.Pin",
		StealClock:  "StealClock",
		StealUART:   "StealUART",
		UARTPrefix:  "UART",
		MinUART:     0,
		MaxUART:     rp2.NumUART - 1,
		PinPrefix:   "GP",
		PinFunc:     rp2.UARTFunc,
		LED:         func(n int) bool { return n >= 0 && n <= 29 },
		SourceHz:    rp2.ClockConfig.Frequency(),
		ComputeBaud: pl011.ComputeBaud,
		Rate:        pl011.Rate,
	},
}

// teensy41 shares the Teensy 4.0 pinout for every pin we use.
func init() {
	t41 := *boards["teensy40"]
	t41.Name = "teensy41"
	boards["teensy41"] = &t41
}

// BoardFor returns the named board.
func BoardFor(name string) (*Board, bool) {
	b, ok := boards[name]
	return b, ok
}

// Boards returns the known board names.
func Boards() []string {
	out := make([]string, 0, len(boards))
	for name := range boards {
		out = append(out, name)
	}
	return out
}

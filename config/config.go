// Package config resolves fault reporter registrations: embedded per-board
// defaults, JSON decoding and validation against the board's pin and UART
// tables.
package config

import (
	"encoding/json"
	"go/token"
	"strings"

	"uartpanic/errcode"
	"uartpanic/serial"
	"uartpanic/types"
	"uartpanic/x/conv"
	"uartpanic/x/mathx"
	"uartpanic/x/strx"
)

const (
	DefaultBaud    = 115200
	DefaultPackage = "main"

	// MaxBaudErrorPct bounds the achieved rate's deviation from the request.
	MaxBaudErrorPct = 3

	IdleHalt = "halt"
	IdleSOS  = "sos"
)

// EmbeddedConfigLookup allows overriding how board defaults are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// DecodeJSON decodes src ([]byte, string or any JSON-marshalable value)
// into dst.
func DecodeJSON[T any](src any, dst *T) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dst)
	}
}

// Default returns the embedded registration for board.
func Default(board string) (types.FaultRegistration, error) {
	var r types.FaultRegistration
	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return r, errcode.New(errcode.UnknownBoard, "config.default", board)
	}
	if err := DecodeJSON(raw, &r); err != nil {
		return r, errcode.Wrap(errcode.InvalidParams, "config.default", err)
	}
	return r, nil
}

// Load decodes a FaultConfig. A bare registration object is accepted as a
// one-element list.
func Load(raw []byte) (types.FaultConfig, error) {
	var fc types.FaultConfig
	if err := DecodeJSON(raw, &fc); err != nil {
		return fc, errcode.Wrap(errcode.InvalidParams, "config.load", err)
	}
	if fc.Faults != nil {
		return fc, nil
	}
	var one types.FaultRegistration
	if err := DecodeJSON(raw, &one); err != nil {
		return fc, errcode.Wrap(errcode.InvalidParams, "config.load", err)
	}
	if one.Board == "" {
		return fc, errcode.New(errcode.InvalidParams, "config.load", "no registrations")
	}
	fc.Faults = []types.FaultRegistration{one}
	return fc, nil
}

// Resolved is a validated registration with every name turned into a number.
type Resolved struct {
	Reg   types.FaultRegistration
	Board *Board

	UART int
	TX   int
	RX   int
	LED  int // -1 unless Idle is "sos"

	Baud     uint32
	Encoded  serial.Baud
	Achieved uint32
}

// ErrorPct is the achieved rate's deviation from the requested rate, in
// whole percent rounded to nearest.
func (r Resolved) ErrorPct() uint32 {
	d := uint64(mathx.AbsDiff(r.Achieved, r.Baud))
	return uint32(mathx.RoundDiv(d*100, uint64(r.Baud)))
}

// Resolve fills defaults from the board's embedded registration and checks
// every field.
func Resolve(reg types.FaultRegistration) (Resolved, error) {
	const op = "config.resolve"
	res := Resolved{LED: -1}

	b, ok := BoardFor(reg.Board)
	if !ok {
		return res, errcode.New(errcode.UnknownBoard, op, reg.Board)
	}
	res.Board = b

	if def, err := Default(reg.Board); err == nil {
		reg.UART = strx.Coalesce(reg.UART, def.UART)
		reg.TX = strx.Coalesce(reg.TX, def.TX)
		reg.RX = strx.Coalesce(reg.RX, def.RX)
		reg.Idle = strx.Coalesce(reg.Idle, def.Idle)
		reg.LED = strx.Coalesce(reg.LED, def.LED)
		if reg.Baud == 0 {
			reg.Baud = def.Baud
		}
	}
	reg.Package = strx.Coalesce(reg.Package, DefaultPackage)
	reg.Idle = strings.ToLower(strx.Coalesce(reg.Idle, IdleHalt))
	if reg.Baud == 0 {
		reg.Baud = DefaultBaud
	}
	res.Reg = reg

	if !token.IsIdentifier(reg.Package) {
		return res, errcode.New(errcode.InvalidParams, op, "package "+reg.Package)
	}

	prefix, n, ok := strx.SplitPrefix(reg.UART)
	if !ok || prefix != b.UARTPrefix || n < b.MinUART || n > b.MaxUART {
		return res, errcode.New(errcode.UnknownBus, op, reg.UART+" on "+b.Name)
	}
	res.UART = n

	var err error
	if res.TX, err = resolvePin(b, reg.TX, n, true); err != nil {
		return res, err
	}
	if res.RX, err = resolvePin(b, reg.RX, n, false); err != nil {
		return res, err
	}

	switch reg.Idle {
	case IdleHalt:
	case IdleSOS:
		p, n, ok := strx.SplitPrefix(reg.LED)
		if !ok || p != b.PinPrefix || !b.LED(n) {
			return res, errcode.New(errcode.UnknownPin, op, "led "+reg.LED)
		}
		res.LED = n
	default:
		return res, errcode.New(errcode.InvalidParams, op, "idle "+reg.Idle)
	}

	res.Baud = reg.Baud
	res.Encoded = b.ComputeBaud(b.SourceHz, reg.Baud)
	res.Achieved = b.Rate(b.SourceHz, res.Encoded)
	if uint64(mathx.AbsDiff(res.Achieved, res.Baud))*100 > uint64(res.Baud)*MaxBaudErrorPct {
		return res, errcode.New(errcode.BaudOutOfRange, op, reg.UART+" cannot reach "+itoa(int(reg.Baud))+" baud")
	}
	return res, nil
}

func resolvePin(b *Board, name string, uart int, tx bool) (int, error) {
	dir := "rx"
	if tx {
		dir = "tx"
	}
	p, n, ok := strx.SplitPrefix(name)
	if !ok || p != b.PinPrefix {
		return 0, errcode.New(errcode.UnknownPin, "config.resolve", dir+" "+name)
	}
	u, isTX, ok := b.PinFunc(n)
	if !ok || u != uart || isTX != tx {
		return 0, errcode.New(errcode.UnknownPin, "config.resolve", dir+" "+name+" is not "+b.UARTPrefix+itoa(uart)+" "+dir)
	}
	return n, nil
}

func itoa(n int) string {
	var buf [20]byte
	return string(conv.Itoa(buf[:], int64(n)))
}

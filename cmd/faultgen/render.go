package main

import (
	"bytes"
	"go/format"
	"sort"
	"text/template"

	"uartpanic/config"
	"uartpanic/errcode"
	"uartpanic/x/conv"
)

var entryTmpl = template.Must(template.New("entry").Parse(`// Code generated by faultgen; DO NOT EDIT.

//go:build {{.Board.BuildTag}}

package {{.Reg.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// faultEntry reports v on {{.Reg.UART}} (TX {{.Reg.TX}}, RX {{.Reg.RX}}) at {{.Baud}} baud, then {{.IdleDoc}}.
//
// Board {{.Board.Name}}: achieved rate {{.Achieved}} baud.
func faultEntry(v any) {
	panicuart.Report(panicuart.Setup[{{.Board.Peripheral}}, {{.Board.PinType}}, {{.Board.PinType}}]{
		Clock:       {{.Pkg}}.{{.Board.StealClock}}(),
		ClockConfig: {{.Pkg}}.ClockConfig,
		UART:        func() {{.Board.Peripheral}} { return {{.Pkg}}.{{.Board.StealUART}}({{.UART}}) },
		TX:          func() {{.Board.PinType}} { return {{.Pkg}}.StealPin({{.TX}}) },
		RX:          func() {{.Board.PinType}} { return {{.Pkg}}.StealPin({{.RX}}) },
		Baud:        {{.Baud}},
{{- if ge .LED 0}}
		Idle:        func() { panicuart.SOS({{.Pkg}}.StealLED({{.LED}}), nil) },
{{- end}}
	}, panicuart.Panicked(v))
}
`))

type entryData struct {
	config.Resolved
	Pkg     string
	Imports []string
	IdleDoc string
}

// Render produces the formatted source of the fault entry point for res.
func Render(res config.Resolved) ([]byte, error) {
	const op = "faultgen.render"
	b := res.Board
	d := entryData{
		Resolved: res,
		Pkg:      b.PkgName,
		IdleDoc:  "halts",
	}
	if res.LED >= 0 {
		d.IdleDoc = "blinks SOS on " + res.Reg.LED
	}
	d.Imports = append(d.Imports, b.Imports...)
	d.Imports = append(d.Imports, "uartpanic/panicuart", b.Platform)
	sort.Strings(d.Imports)

	var buf bytes.Buffer
	if err := entryTmpl.Execute(&buf, d); err != nil {
		return nil, errcode.Wrap(errcode.Error, op, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, op, err)
	}
	return src, nil
}

func itoa(n int) string {
	var buf [20]byte
	return string(conv.Itoa(buf[:], int64(n)))
}

// Command faultgen writes the fault entry point of a program.
//
// It resolves a registration (from -config, or the embedded default of
// -board), checks the target directory does not already declare one, and
// writes faultentry_gen.go declaring
//
//	func faultEntry(v any)
//
// for use as
//
//	defer panicuart.Catch(faultEntry)
//
// Typical use is a go:generate line in the program's main package:
//
//	//go:generate go run uartpanic/cmd/faultgen -board teensy40
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"uartpanic/config"
	"uartpanic/types"
)

var (
	board   = flag.String("board", "", "Board whose embedded registration is used when -config is empty.")
	cfgPath = flag.String("config", "", "JSON file with a registration or a {\"faults\": [...]} list.")
	dir     = flag.String("dir", ".", "Directory of the package to generate into.")
	dryRun  = flag.Bool("n", false, "Print the generated source instead of writing it.")
)

func loadConfig() (types.FaultConfig, error) {
	if *cfgPath != "" {
		raw, err := os.ReadFile(*cfgPath)
		if err != nil {
			return types.FaultConfig{}, err
		}
		return config.Load(raw)
	}
	reg, err := config.Default(*board)
	if err != nil {
		return types.FaultConfig{}, err
	}
	return types.FaultConfig{Faults: []types.FaultRegistration{reg}}, nil
}

func main() {
	flag.Parse()
	defer glog.Flush()

	fc, err := loadConfig()
	if err != nil {
		glog.Exitf("load: %v", err)
	}
	tg, err := CheckTarget(*dir)
	if err != nil {
		glog.Exitf("target: %v", err)
	}
	res, err := Compose(fc, tg.Package)
	if err != nil {
		glog.Exitf("compose: %v", err)
	}
	if pct := res.ErrorPct(); pct > 0 {
		glog.Warningf("%s: %d baud requested, %d achieved (%d%% off)", res.Reg.UART, res.Baud, res.Achieved, pct)
	}
	glog.V(1).Infof("board %s: %s tx=%s rx=%s baud=%d idle=%s", res.Board.Name, res.Reg.UART, res.Reg.TX, res.Reg.RX, res.Baud, res.Reg.Idle)

	src, err := Render(res)
	if err != nil {
		glog.Exitf("render: %v", err)
	}
	if *dryRun {
		os.Stdout.Write(src)
		return
	}
	out := filepath.Join(tg.Dir, genFile)
	if err := os.WriteFile(out, src, 0o644); err != nil {
		glog.Exitf("write: %v", err)
	}
	glog.Infof("wrote %s", out)
}

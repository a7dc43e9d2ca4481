// Command faultsim runs the fault reporter's sequence on the host against
// recording collaborators, to inspect the call order and the bytes a board
// would transmit.
//
//	faultsim -board pico report boom
//	faultsim -script checks.txt
//	faultsim            (interactive)
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
)

var (
	board  = flag.String("board", "teensy40", "Board whose embedded registration is simulated.")
	script = flag.String("script", "", "File of commands, one per line.")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	s, err := NewSim(*board, os.Stdout)
	if err != nil {
		glog.Exitf("board %q: %v", *board, err)
	}
	sh := NewShell(s)

	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			glog.Exit(err)
		}
		cmds, err := ParseScript(f)
		f.Close()
		if err != nil {
			glog.Exit(err)
		}
		for _, args := range cmds {
			glog.V(1).Infof("run %q", args)
			if err := sh.Process(args...); err != nil {
				glog.Exitf("%q: %v", args, err)
			}
		}
		return
	}
	if args := flag.Args(); len(args) > 0 {
		if err := sh.Process(args...); err != nil {
			glog.Exit(err)
		}
		return
	}
	sh.Run()
}

//go:build !cortexm

package panicuart

import "os"

// Halt stops the process with exit status 2, the status the Go runtime uses
// for an unrecovered panic.
func Halt() {
	os.Exit(2)
}

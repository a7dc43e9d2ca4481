//go:build cortexm

package panicuart

import "device/arm"

// Halt executes a permanently undefined instruction, escalating to the
// HardFault handler, and spins if that handler ever returns.
func Halt() {
	for {
		arm.Asm("udf #0")
	}
}

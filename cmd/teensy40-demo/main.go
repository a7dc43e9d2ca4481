//go:build mimxrt1062

// Command teensy40-demo counts down and then divides by zero. The panic is
// reported on Serial1 (pins 0 and 1) at 115200 baud.
package main

//go:generate go run uartpanic/cmd/faultgen -board teensy40

import (
	"time"

	"uartpanic/panicuart"
)

func ratio(a, b int) int { return a / b }

func main() {
	defer panicuart.Catch(faultEntry)

	for n := 5; n >= 0; n-- {
		println("ratio", ratio(100, n))
		time.Sleep(500 * time.Millisecond)
	}
}

//go:build rp2040 || rp2350

// Command pico-demo writes to a nil map after a few ticks. The panic is
// reported on UART0 (GP0, GP1) at 115200 baud, then the LED blinks SOS.
package main

//go:generate go run uartpanic/cmd/faultgen -board pico

import (
	"time"

	"uartpanic/panicuart"
)

var seen map[int]bool

func main() {
	defer panicuart.Catch(faultEntry)

	for i := 0; ; i++ {
		println("tick", i)
		if i == 3 {
			seen[i] = true
		}
		time.Sleep(time.Second)
	}
}

package panicuart

// LED is anything that can be switched on and off, e.g. machine.Pin.
type LED interface {
	Set(on bool)
}

// Morse "... --- ...": on-time of each symbol, in units.
var sosSymbols = [9]uint8{1, 1, 1, 3, 3, 3, 1, 1, 1}

// SOS blinks SOS on led forever. unit blocks for one Morse time unit; nil
// selects SpinUnit. It is meant to be called from a Terminal:
//
//	Idle: func() { panicuart.SOS(rp2.StealLED(25), nil) }
func SOS(led LED, unit func()) {
	if unit == nil {
		unit = SpinUnit
	}
	for {
		for i, on := range sosSymbols {
			led.Set(true)
			wait(unit, on)
			led.Set(false)
			switch {
			case i == len(sosSymbols)-1:
				wait(unit, 7)
			case i%3 == 2:
				wait(unit, 3)
			default:
				wait(unit, 1)
			}
		}
	}
}

func wait(unit func(), n uint8) {
	for ; n > 0; n-- {
		unit()
	}
}

var spinSink uint32

// Spin busy-waits for n iterations. It uses no timer, so it works with
// interrupts and the scheduler in any state.
func Spin(n uint32) {
	for i := uint32(0); i < n; i++ {
		spinSink += i
	}
}

// SpinUnit is the default Morse unit, Spin(1 << 20).
func SpinUnit() { Spin(1 << 20) }

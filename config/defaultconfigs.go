package config

// -----------------------------------------------------------------------------
// Embedded registrations
//
// Key: board name
// Val: raw JSON of the board's default types.FaultRegistration
// -----------------------------------------------------------------------------

const cfgTeensy40 = `{
  "board": "teensy40",
  "uart": "LPUART6",
  "tx": "P1",
  "rx": "P0",
  "baud": 115200
}`

const cfgTeensy41 = `{
  "board": "teensy41",
  "uart": "LPUART6",
  "tx": "P1",
  "rx": "P0",
  "baud": 115200
}`

const cfgPico = `{
  "board": "pico",
  "uart": "UART0",
  "tx": "GP0",
  "rx": "GP1",
  "baud": 115200,
  "idle": "sos",
  "led": "GP25"
}`

var embeddedConfigs = map[string][]byte{
	"teensy40": []byte(cfgTeensy40),
	"teensy41": []byte(cfgTeensy41),
	"pico":     []byte(cfgPico),
}

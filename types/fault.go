package types

// ------------------------
// Fault reporter registration
// ------------------------

// FaultRegistration selects the board, UART instance, pins and baud rate
// used by the generated fault entry point.
type FaultRegistration struct {
	Board   string `json:"board"`             // "teensy40", "pico", ...
	Package string `json:"package,omitempty"` // Go package of the target; "main" if empty
	UART    string `json:"uart"`              // "LPUART6", "UART0", ...
	TX      string `json:"tx"`                // board pin name, e.g. "P1", "GP0"
	RX      string `json:"rx"`
	Baud    uint32 `json:"baud,omitempty"` // 115200 if zero
	Idle    string `json:"idle,omitempty"` // "halt" (default) or "sos"
	LED     string `json:"led,omitempty"`  // pin for "sos"
}

// FaultConfig is the generator input: a list of registrations of which
// exactly one may target a package.
type FaultConfig struct {
	Faults []FaultRegistration `json:"faults"`
}

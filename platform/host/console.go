package host

import "io"

// Console is a transmit-only drivers.UART over an io.Writer.
type Console struct {
	W    io.Writer
	Baud uint32 // last rate set through SetBaudRate
}

func (c *Console) Read([]byte) (int, error)    { return 0, nil }
func (c *Console) Buffered() int               { return 0 }
func (c *Console) Write(p []byte) (int, error) { return c.W.Write(p) }
func (c *Console) SetBaudRate(br uint32)       { c.Baud = br }

// Flush flushes W when it buffers, e.g. a *bufio.Writer.
func (c *Console) Flush() error {
	if f, ok := c.W.(flusher); ok {
		return f.Flush()
	}
	return nil
}

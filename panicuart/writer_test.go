package panicuart

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type bufPort struct {
	bytes.Buffer
	flushed int
}

func (p *bufPort) Flush() error { p.flushed++; return nil }

func TestWriterInsertsCarriageReturn(t *testing.T) {
	var p bufPort
	w := NewWriter(&p)

	n, err := w.WriteString("a\nb")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = w.Write([]byte("\n"))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.Equal(t, "a\r\nb\r\n", p.String())
}

func TestWriterNumbers(t *testing.T) {
	var p bufPort
	w := NewWriter(&p)

	w.WriteUint(115200)
	_ = w.WriteByte(' ')
	w.WriteInt(-42)
	_ = w.WriteByte(' ')
	w.WriteHex(0x2000_1f00, 8)
	_ = w.WriteByte(' ')
	w.WriteHex(0xab, 0)

	require.Equal(t, "115200 -42 0x20001f00 0xab", p.String())
}

func TestWriterFlushReportsPortError(t *testing.T) {
	w := NewWriter(failPort{})
	require.Error(t, w.Flush())
	require.NoError(t, w.WriteByte('x'))
}

type failPort struct{}

func (failPort) Write(p []byte) (int, error) { return 0, errors.New("dead") }
func (failPort) Flush() error                { return errors.New("dead") }

func TestWriterDoesNotAllocate(t *testing.T) {
	var p countPort
	w := NewWriter(&p)
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = w.WriteString("fault\nat 0x")
		w.WriteHex(0xdeadbeef, 8)
		w.WriteUint(42)
		w.WriteInt(-1)
	})
	require.Zero(t, allocs)
}

type countPort struct{ n int }

func (p *countPort) Write(b []byte) (int, error) { p.n += len(b); return len(b), nil }
func (p *countPort) Flush() error                { return nil }

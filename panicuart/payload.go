package panicuart

// Payload is fault text that renders itself onto a Writer.
type Payload interface {
	Render(w *Writer)
}

// PayloadFunc adapts a function to Payload.
type PayloadFunc func(w *Writer)

func (f PayloadFunc) Render(w *Writer) { f(w) }

// Text is a literal message.
type Text string

func (t Text) Render(w *Writer) { _, _ = w.WriteString(string(t)) }

// Recovered renders a value returned by recover().
type Recovered struct {
	Value any
}

var panicked Recovered

// Panicked returns v as a Payload without boxing a Recovered on the heap.
// Each call reuses the same storage.
func Panicked(v any) Payload {
	panicked.Value = v
	return &panicked
}

func (r Recovered) Render(w *Writer) {
	_, _ = w.WriteString("panicked: ")
	switch v := r.Value.(type) {
	case nil:
		_, _ = w.WriteString("nil")
	case string:
		_, _ = w.WriteString(v)
	case error:
		_, _ = w.WriteString(v.Error())
	case interface{ String() string }:
		_, _ = w.WriteString(v.String())
	case bool:
		if v {
			_, _ = w.WriteString("true")
		} else {
			_, _ = w.WriteString("false")
		}
	case int:
		w.WriteInt(int64(v))
	case int8:
		w.WriteInt(int64(v))
	case int16:
		w.WriteInt(int64(v))
	case int32:
		w.WriteInt(int64(v))
	case int64:
		w.WriteInt(v)
	case uint:
		w.WriteUint(uint64(v))
	case uint8:
		w.WriteUint(uint64(v))
	case uint16:
		w.WriteUint(uint64(v))
	case uint32:
		w.WriteUint(uint64(v))
	case uint64:
		w.WriteUint(v)
	case uintptr:
		w.WriteHex(uint64(v), 8)
	default:
		_, _ = w.WriteString("(unprintable value)")
	}
}

// Fault summarises a processor exception. On the fault path pass a pointer
// to static storage; a Fault value boxed in a Payload is heap allocated.
type Fault struct {
	Reason string
	PC     uintptr
	LR     uintptr
	SP     uintptr
	Addr   uintptr // faulting address; zero when not latched
}

func (f Fault) Render(w *Writer) {
	_, _ = w.WriteString("fault: ")
	_, _ = w.WriteString(f.Reason)
	_, _ = w.WriteString("\n  pc ")
	w.WriteHex(uint64(f.PC), 8)
	_, _ = w.WriteString("\n  lr ")
	w.WriteHex(uint64(f.LR), 8)
	_, _ = w.WriteString("\n  sp ")
	w.WriteHex(uint64(f.SP), 8)
	if f.Addr != 0 {
		_, _ = w.WriteString("\n  addr ")
		w.WriteHex(uint64(f.Addr), 8)
	}
}

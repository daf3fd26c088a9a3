package jsonb

// An Encoder wraps a Builder with an owned, growable buffer. When a
// write runs out of room the buffer is doubled and the call retried;
// the Builder's no-partial-write guarantee makes the retry exact.
type Encoder struct {
	b      Builder
	buf    []byte
	keybuf []byte
}

func NewEncoder() *Encoder {
	e := &Encoder{}
	e.b.Init()
	return e
}

// Bytes returns the document committed so far. The slice is only valid
// until the next write.
func (e *Encoder) Bytes() []byte {
	return e.buf[:e.b.Len()]
}

func (e *Encoder) Len() int {
	return e.b.Len()
}

// State returns the current expectation of the underlying Builder.
func (e *Encoder) State() State {
	return e.b.State()
}

// SetTrace installs a transition observer on the underlying Builder.
func (e *Encoder) SetTrace(fn TraceFunc) {
	e.b.SetTrace(fn)
}

// Reset discards the current document and starts a new one, keeping
// the allocated buffer.
func (e *Encoder) Reset() {
	e.b.Init()
}

func (e *Encoder) grow() {
	n := 2 * len(e.buf)
	if n < 64 {
		n = 64
	}
	next := make([]byte, n)
	copy(next, e.buf[:e.b.Len()])
	e.buf = next
}

func (e *Encoder) retry(fn func(buf []byte) error) error {
	for {
		err := fn(e.buf)
		if err != ErrNoSpace {
			return err
		}
		e.grow()
	}
}

func (e *Encoder) WriteObjectStart() error {
	return e.retry(func(buf []byte) error { return e.b.WriteObjectStart(buf) })
}

func (e *Encoder) WriteObjectEnd() error {
	return e.retry(func(buf []byte) error { return e.b.WriteObjectEnd(buf) })
}

func (e *Encoder) WriteArrayStart() error {
	return e.retry(func(buf []byte) error { return e.b.WriteArrayStart(buf) })
}

func (e *Encoder) WriteArrayEnd() error {
	return e.retry(func(buf []byte) error { return e.b.WriteArrayEnd(buf) })
}

// WriteKey writes an object member key verbatim, as Builder.WriteKey.
func (e *Encoder) WriteKey(key string) error {
	return e.retry(func(buf []byte) error { return e.b.WriteKey(buf, key) })
}

// WriteEscapedKey escapes key before writing it, for keys that may
// contain quotes, backslashes or control characters.
func (e *Encoder) WriteEscapedKey(key string) error {
	e.keybuf = AppendEscape(e.keybuf[:0], key)
	k := string(e.keybuf)
	return e.retry(func(buf []byte) error { return e.b.WriteKey(buf, k) })
}

func (e *Encoder) WriteToken(tok string) error {
	return e.retry(func(buf []byte) error { return e.b.WriteToken(buf, tok) })
}

func (e *Encoder) WriteBool(v bool) error {
	return e.retry(func(buf []byte) error { return e.b.WriteBool(buf, v) })
}

func (e *Encoder) WriteNull() error {
	return e.retry(func(buf []byte) error { return e.b.WriteNull(buf) })
}

func (e *Encoder) WriteString(s string) error {
	return e.retry(func(buf []byte) error { return e.b.WriteString(buf, s) })
}

func (e *Encoder) WriteNumber(v float64) error {
	return e.retry(func(buf []byte) error { return e.b.WriteNumber(buf, v) })
}

func (e *Encoder) WriteInt(v int64) error {
	return e.retry(func(buf []byte) error { return e.b.WriteInt(buf, v) })
}

func (e *Encoder) WriteUint(v uint64) error {
	return e.retry(func(buf []byte) error { return e.b.WriteUint(buf, v) })
}

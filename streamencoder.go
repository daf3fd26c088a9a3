package jsonb

import (
	"io"
)

// A StreamEncoder feeds builder output to an io.Writer, flushing
// committed bytes chunk by chunk. Committed bytes are final, so a
// flush never has to be revisited; the chunk grows only when a single
// token is larger than it.
type StreamEncoder struct {
	w   io.Writer
	b   Builder
	buf []byte

	// Werr holds the first write error from the underlying writer.
	// Once set, every operation returns it until Reset.
	Werr error
}

const streamChunkSize = 512

func NewStreamEncoder(w io.Writer) *StreamEncoder {
	e := &StreamEncoder{
		w:   w,
		buf: make([]byte, streamChunkSize),
	}
	e.b.Init()
	return e
}

// Reset clears the error state and starts a new document. Bytes
// already flushed to the writer are not undone.
func (e *StreamEncoder) Reset() {
	e.b.Init()
	e.Werr = nil
}

// State returns the current expectation of the underlying Builder.
func (e *StreamEncoder) State() State {
	return e.b.State()
}

// Flush writes any committed bytes still held in the chunk buffer.
func (e *StreamEncoder) Flush() error {
	if e.Werr != nil {
		return e.Werr
	}
	if n := e.b.Len(); n > 0 {
		_, err := e.w.Write(e.buf[:n])
		e.Werr = err
		e.b.rebase()
	}
	return e.Werr
}

func (e *StreamEncoder) run(fn func(buf []byte) error) error {
	if e.Werr != nil {
		return e.Werr
	}
	for {
		err := fn(e.buf)
		if err != ErrNoSpace {
			return err
		}
		if e.b.Len() > 0 {
			if err := e.Flush(); err != nil {
				return err
			}
			continue
		}
		// A single token larger than the chunk.
		e.buf = make([]byte, 2*len(e.buf))
	}
}

func (e *StreamEncoder) WriteObjectStart() error {
	return e.run(func(buf []byte) error { return e.b.WriteObjectStart(buf) })
}

func (e *StreamEncoder) WriteObjectEnd() error {
	return e.run(func(buf []byte) error { return e.b.WriteObjectEnd(buf) })
}

func (e *StreamEncoder) WriteArrayStart() error {
	return e.run(func(buf []byte) error { return e.b.WriteArrayStart(buf) })
}

func (e *StreamEncoder) WriteArrayEnd() error {
	return e.run(func(buf []byte) error { return e.b.WriteArrayEnd(buf) })
}

func (e *StreamEncoder) WriteKey(key string) error {
	return e.run(func(buf []byte) error { return e.b.WriteKey(buf, key) })
}

func (e *StreamEncoder) WriteToken(tok string) error {
	return e.run(func(buf []byte) error { return e.b.WriteToken(buf, tok) })
}

func (e *StreamEncoder) WriteBool(v bool) error {
	return e.run(func(buf []byte) error { return e.b.WriteBool(buf, v) })
}

func (e *StreamEncoder) WriteNull() error {
	return e.run(func(buf []byte) error { return e.b.WriteNull(buf) })
}

func (e *StreamEncoder) WriteString(s string) error {
	return e.run(func(buf []byte) error { return e.b.WriteString(buf, s) })
}

func (e *StreamEncoder) WriteNumber(v float64) error {
	return e.run(func(buf []byte) error { return e.b.WriteNumber(buf, v) })
}

func (e *StreamEncoder) WriteInt(v int64) error {
	return e.run(func(buf []byte) error { return e.b.WriteInt(buf, v) })
}

func (e *StreamEncoder) WriteUint(v uint64) error {
	return e.run(func(buf []byte) error { return e.b.WriteUint(buf, v) })
}

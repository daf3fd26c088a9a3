package jsonb

import (
	"errors"
)

var (
	// ErrNoSpace reports that the destination buffer cannot hold the
	// bytes this call needs. Nothing was written and no state changed:
	// the identical call can be retried against a larger buffer.
	ErrNoSpace = errors.New("jsonb: destination buffer too small")

	// ErrInput reports a call that the grammar does not permit in the
	// current context. The builder is unusable until re-initialized.
	ErrInput = errors.New("jsonb: call not valid in current context")

	// ErrDepth reports that an open would exceed the nesting limit.
	// No state changed.
	ErrDepth = errors.New("jsonb: max nesting depth exceeded")

	// ErrNumber reports a NaN or infinite float. No state changed.
	ErrNumber = errors.New("jsonb: number is not finite")
)

// Done signals that the top-level value is now syntactically complete.
// It is not a failure: the operation that returns it did commit its
// bytes, and the buffer holds one well-formed JSON document. It is
// returned exactly once per document; any later write returns ErrInput.
var Done = errors.New("jsonb: document complete")

// Maximum nesting depth a Builder stack can be configured for.
const MaxDepth = 512

// A Builder incrementally writes one JSON document into a caller-owned
// buffer, validating that the sequence of calls forms legal JSON.
//
// The buffer is passed to every call and never retained. A call either
// commits all of its bytes and advances the cursor, or commits nothing.
// The zero Builder is ready to use with the default depth limit; Init
// resets it for a new document.
type Builder struct {
	stack   [MaxDepth + 2]State
	top     int
	limit   int
	pos     int
	trace   TraceFunc
	scratch [32]byte
}

// NewBuilder returns an initialized Builder with the default depth limit.
func NewBuilder() *Builder {
	b := &Builder{}
	b.Init()
	return b
}

// Init resets the builder for a new document with the default depth
// limit. Any previous error or completion state is discarded.
func (b *Builder) Init() {
	b.InitDepth(MaxDepth)
}

// InitDepth resets the builder for a new document with the given
// nesting limit. The limit counts open containers and is clamped to
// [1, MaxDepth].
func (b *Builder) InitDepth(limit int) {
	if limit < 1 {
		limit = 1
	} else if limit > MaxDepth {
		limit = MaxDepth
	}
	b.stack[0] = StateDone
	b.stack[1] = StateValue
	b.top = 1
	b.limit = limit
	b.pos = 0
}

// Len returns the number of bytes committed into the destination
// buffer for the current document.
func (b *Builder) Len() int {
	return b.pos
}

// State returns the current expectation at the innermost nesting level.
func (b *Builder) State() State {
	b.lazyInit()
	return b.stack[b.top]
}

// Depth returns the number of currently open containers.
func (b *Builder) Depth() int {
	b.lazyInit()
	// A bare top-level scalar pops the value slot itself, leaving only
	// the done marker.
	if b.top < 1 {
		return 0
	}
	return b.top - 1
}

func (b *Builder) lazyInit() {
	if b.limit == 0 {
		b.Init()
	}
}

// rebase resets the write cursor after the caller has drained the
// committed bytes. Grammar state is unaffected.
func (b *Builder) rebase() {
	b.pos = 0
}

func (b *Builder) setTop(op string, s State) {
	if b.trace != nil {
		b.trace(op, b.stack[b.top], s)
	}
	b.stack[b.top] = s
}

func (b *Builder) push(op string, s State) {
	if b.trace != nil {
		b.trace(op, b.stack[b.top], s)
	}
	b.top++
	b.stack[b.top] = s
}

func (b *Builder) pop(op string) {
	b.top--
	if b.trace != nil {
		b.trace(op, b.stack[b.top+1], b.stack[b.top])
	}
}

// fail poisons the builder. Every later call except Init/InitDepth
// fails the same way.
func (b *Builder) fail(op string) error {
	if b.stack[b.top] != StateError {
		b.setTop(op, StateError)
	}
	return ErrInput
}

// WriteObjectStart opens an object, emitting "{" and any separator the
// context requires.
func (b *Builder) WriteObjectStart(buf []byte) error {
	return b.open(buf, '{', StateObjectKeyOrClose, "WriteObjectStart")
}

// WriteArrayStart opens an array, emitting "[" and any separator the
// context requires.
func (b *Builder) WriteArrayStart(buf []byte) error {
	return b.open(buf, '[', StateArrayValueOrClose, "WriteArrayStart")
}

func (b *Builder) open(buf []byte, mark byte, child State, op string) error {
	b.lazyInit()
	comma := false
	switch b.stack[b.top] {
	case StateArrayNextValueOrClose:
		comma = true
	case StateValue, StateObjectValue, StateArrayValueOrClose:
	default:
		return b.fail(op)
	}
	if b.top-1 >= b.limit {
		return ErrDepth
	}
	n := 1
	if comma {
		n = 2
	}
	if b.pos+n > len(buf) {
		return ErrNoSpace
	}
	p := b.pos
	if comma {
		buf[p] = ','
		p++
	}
	buf[p] = mark

	// The slot we are opening in becomes the expectation that holds
	// once this container closes.
	switch b.stack[b.top] {
	case StateValue:
		b.setTop(op, StateDone)
	case StateObjectValue:
		b.setTop(op, StateObjectNextKeyOrClose)
	case StateArrayValueOrClose, StateArrayNextValueOrClose:
		b.setTop(op, StateArrayNextValueOrClose)
	}
	b.push(op, child)
	b.pos = p + 1
	return nil
}

// WriteObjectEnd closes the innermost object, emitting "}". Returns
// Done if this completes the document.
func (b *Builder) WriteObjectEnd(buf []byte) error {
	return b.close(buf, '}', StateObjectKeyOrClose, StateObjectNextKeyOrClose, "WriteObjectEnd")
}

// WriteArrayEnd closes the innermost array, emitting "]". Returns Done
// if this completes the document.
func (b *Builder) WriteArrayEnd(buf []byte) error {
	return b.close(buf, ']', StateArrayValueOrClose, StateArrayNextValueOrClose, "WriteArrayEnd")
}

func (b *Builder) close(buf []byte, mark byte, s1, s2 State, op string) error {
	b.lazyInit()
	if st := b.stack[b.top]; st != s1 && st != s2 {
		return b.fail(op)
	}
	if b.pos+1 > len(buf) {
		return ErrNoSpace
	}
	buf[b.pos] = mark
	b.pop(op)
	b.pos++
	if b.stack[b.top] == StateDone {
		return Done
	}
	return nil
}

// WriteKey writes an object member key followed by ":". The key bytes
// are copied verbatim without escaping; use AppendEscape first if the
// key may contain quotes, backslashes or control characters.
func (b *Builder) WriteKey(buf []byte, key string) error {
	const op = "WriteKey"
	b.lazyInit()
	comma := false
	switch b.stack[b.top] {
	case StateObjectNextKeyOrClose:
		comma = true
	case StateObjectKeyOrClose:
	default:
		return b.fail(op)
	}
	n := len(key) + 3
	if comma {
		n++
	}
	if b.pos+n > len(buf) {
		return ErrNoSpace
	}
	p := b.pos
	if comma {
		buf[p] = ','
		p++
	}
	buf[p] = '"'
	p++
	p += copy(buf[p:], key)
	buf[p] = '"'
	buf[p+1] = ':'
	b.setTop(op, StateObjectValue)
	b.pos = p + 2
	return nil
}

// valueSlot reports whether the current context accepts a value and
// whether a separator comma is required first.
func (b *Builder) valueSlot(op string) (comma bool, err error) {
	b.lazyInit()
	switch b.stack[b.top] {
	case StateValue, StateObjectValue, StateArrayValueOrClose:
		return false, nil
	case StateArrayNextValueOrClose:
		return true, nil
	default:
		return false, b.fail(op)
	}
}

// valueDone commits the state transition after a value write. Returns
// Done when the value completed the top-level document.
func (b *Builder) valueDone(op string) error {
	switch b.stack[b.top] {
	case StateValue:
		// Top-level scalar: uncover the done marker below it.
		b.pop(op)
	case StateObjectValue:
		b.setTop(op, StateObjectNextKeyOrClose)
	case StateArrayValueOrClose, StateArrayNextValueOrClose:
		b.setTop(op, StateArrayNextValueOrClose)
	}
	if b.stack[b.top] == StateDone {
		return Done
	}
	return nil
}

// writeScalar emits a raw token in a value position, with a leading
// comma when the context requires one.
func writeScalar[T ~string | ~[]byte](b *Builder, buf []byte, op string, tok T) error {
	comma, err := b.valueSlot(op)
	if err != nil {
		return err
	}
	n := len(tok)
	if comma {
		n++
	}
	if b.pos+n > len(buf) {
		return ErrNoSpace
	}
	p := b.pos
	if comma {
		buf[p] = ','
		p++
	}
	copy(buf[p:], tok)
	b.pos = p + len(tok)
	return b.valueDone(op)
}

// WriteToken writes tok verbatim as a single value. The caller is
// responsible for tok being a valid JSON value; no validation or
// escaping is applied.
func (b *Builder) WriteToken(buf []byte, tok string) error {
	return writeScalar(b, buf, "WriteToken", tok)
}

// WriteBool writes "true" or "false".
func (b *Builder) WriteBool(buf []byte, v bool) error {
	if v {
		return writeScalar(b, buf, "WriteBool", "true")
	}
	return writeScalar(b, buf, "WriteBool", "false")
}

// WriteNull writes "null".
func (b *Builder) WriteNull(buf []byte) error {
	return writeScalar(b, buf, "WriteNull", "null")
}

// WriteString writes s as a quoted, escaped JSON string value.
func (b *Builder) WriteString(buf []byte, s string) error {
	const op = "WriteString"
	comma, err := b.valueSlot(op)
	if err != nil {
		return err
	}
	n := len(s) + escapeExtra(s) + 2
	if comma {
		n++
	}
	if b.pos+n > len(buf) {
		return ErrNoSpace
	}
	p := b.pos
	if comma {
		buf[p] = ','
		p++
	}
	buf[p] = '"'
	p++
	p += escapeCopy(buf[p:], s)
	buf[p] = '"'
	b.pos = p + 1
	return b.valueDone(op)
}

package jsonb

import (
	"github.com/go-kit/log"
)

// TraceFunc observes state transitions of a Builder. op is the public
// operation in progress; from and to are the stack-top expectations
// around one transition. A single operation may report more than one
// transition (a container open updates the parent slot, then pushes).
type TraceFunc func(op string, from, to State)

// SetTrace installs fn as the transition observer. A nil fn disables
// tracing, which is the default; the hook costs one nil check per
// transition when disabled.
func (b *Builder) SetTrace(fn TraceFunc) {
	b.trace = fn
}

// NewLogTracer returns a TraceFunc that records every transition on
// the given logger.
func NewLogTracer(logger log.Logger) TraceFunc {
	return func(op string, from, to State) {
		logger.Log("op", op, "from", from.String(), "to", to.String())
	}
}

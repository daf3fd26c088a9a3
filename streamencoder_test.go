package jsonb

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamEncoderChunkedFlush(t *testing.T) {
	var out bytes.Buffer
	e := NewStreamEncoder(&out)

	// Enough members to force several chunk flushes.
	e.WriteObjectStart()
	for i := 0; i < 200; i++ {
		e.WriteKey("field_" + strings.Repeat("x", i%7))
		e.WriteInt(int64(i))
	}
	// A single value larger than the chunk.
	e.WriteKey("blob")
	e.WriteString(strings.Repeat("long value ", 200))
	err := e.WriteObjectEnd()

	require.Equal(t, Done, err)
	require.NoError(t, e.Flush())
	require.True(t, json.Valid(out.Bytes()))
}

func TestStreamEncoderScalar(t *testing.T) {
	var out bytes.Buffer
	e := NewStreamEncoder(&out)

	require.Equal(t, Done, e.WriteNumber(3.14))
	require.NoError(t, e.Flush())
	require.Equal(t, "3.14", out.String())
}

type failWriter struct{ err error }

func (w *failWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestStreamEncoderWriteErrorSticks(t *testing.T) {
	werr := errors.New("disk full")
	e := NewStreamEncoder(&failWriter{err: werr})

	e.WriteArrayStart()
	for i := 0; i < 10000 && e.Werr == nil; i++ {
		e.WriteInt(int64(i))
	}
	require.Equal(t, werr, e.Werr)

	// Cached: every later call reports the same failure.
	require.Equal(t, werr, e.WriteNull())
	require.Equal(t, werr, e.Flush())
}

func TestStreamEncoderSequenceError(t *testing.T) {
	var out bytes.Buffer
	e := NewStreamEncoder(&out)

	require.Equal(t, ErrInput, e.WriteObjectEnd())
	require.Equal(t, StateError, e.State())

	e.Reset()
	require.Equal(t, Done, e.WriteNull())
}

package jsonb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoderGrowth(t *testing.T) {
	e := NewEncoder()

	long := strings.Repeat("0123456789", 50)

	require.NoError(t, e.WriteObjectStart())
	require.NoError(t, e.WriteKey("long"))
	require.NoError(t, e.WriteString(long))
	require.Equal(t, Done, e.WriteObjectEnd())

	// Output must match a single-big-buffer run of the Builder.
	want := make([]byte, 1024)
	var b Builder
	b.Init()
	b.WriteObjectStart(want)
	b.WriteKey(want, "long")
	b.WriteString(want, long)
	b.WriteObjectEnd(want)

	require.Equal(t, string(want[:b.Len()]), string(e.Bytes()))
}

func TestEncoderReset(t *testing.T) {
	e := NewEncoder()
	require.Equal(t, Done, e.WriteString("first"))

	e.Reset()
	require.Equal(t, Done, e.WriteNumber(42))
	require.Equal(t, "42", string(e.Bytes()))
}

func TestEncoderEscapedKey(t *testing.T) {
	e := NewEncoder()
	e.WriteObjectStart()
	e.WriteEscapedKey("he said \"hi\"\n")
	e.WriteNull()
	require.Equal(t, Done, e.WriteObjectEnd())
	require.Equal(t, `{"he said \"hi\"\n":null}`, string(e.Bytes()))
}

func TestEncoderSequenceErrorSurfaces(t *testing.T) {
	e := NewEncoder()
	e.WriteArrayStart()
	require.Equal(t, ErrInput, e.WriteKey("k"))
	require.Equal(t, StateError, e.State())
}

func TestEncoderZeroValue(t *testing.T) {
	var e Encoder
	require.Equal(t, Done, e.WriteBool(true))
	require.Equal(t, "true", string(e.Bytes()))
}

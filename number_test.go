package jsonb

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteNumber must agree byte for byte with encoding/json's float64
// formatting.
func TestNumberAgainstStdlib(t *testing.T) {
	values := []float64{
		0,
		math.Copysign(0, -1),
		1,
		-1,
		3.14,
		-1.5,
		0.1,
		1e-6,
		1e-7,
		1e20,
		1e21,
		-2.5e-9,
		123456789.123,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		1.0 / 3.0,
	}

	var buf [64]byte
	var b Builder
	for _, v := range values {
		b.Init()
		err := b.WriteNumber(buf[:], v)
		require.Equal(t, Done, err)

		want, merr := json.Marshal(v)
		require.NoError(t, merr)
		require.Equal(t, string(want), string(buf[:b.Len()]), "value %v", v)
	}
}

func TestNumberRoundTrip(t *testing.T) {
	values := []float64{3.14, 1.0 / 3.0, 1e-300, 6.02214076e23}

	var buf [64]byte
	var b Builder
	for _, v := range values {
		b.Init()
		b.WriteNumber(buf[:], v)

		var back float64
		require.NoError(t, json.Unmarshal(buf[:b.Len()], &back))
		require.Equal(t, v, back)
	}
}

func TestNumberNonFinite(t *testing.T) {
	var buf [64]byte
	b := NewBuilder()
	b.WriteArrayStart(buf[:])
	pos, st := b.Len(), b.State()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := b.WriteNumber(buf[:], v); err != ErrNumber {
			t.Fatal("expected ErrNumber, got: ", err)
		}
		// No state change: the builder is still usable.
		if b.Len() != pos || b.State() != st {
			t.Fatal("state mutated by a non-finite number")
		}
	}

	b.WriteNumber(buf[:], 1)
	require.Equal(t, Done, b.WriteArrayEnd(buf[:]))
	require.Equal(t, "[1]", string(buf[:b.Len()]))
}

func TestWriteIntUint(t *testing.T) {
	var buf [64]byte
	var b Builder

	b.Init()
	b.WriteArrayStart(buf[:])
	b.WriteInt(buf[:], math.MinInt64)
	b.WriteInt(buf[:], -1)
	b.WriteInt(buf[:], 0)
	b.WriteUint(buf[:], math.MaxUint64)
	require.Equal(t, Done, b.WriteArrayEnd(buf[:]))
	require.Equal(t,
		"[-9223372036854775808,-1,0,18446744073709551615]",
		string(buf[:b.Len()]))
}

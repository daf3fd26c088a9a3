package jsonb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteValueTree(t *testing.T) {
	v := map[string]any{
		"name":  "demo",
		"count": 3,
		"ratio": 0.25,
		"tags":  []any{"a", "b"},
		"flags": map[string]any{"on": true, "off": false},
		"empty": nil,
	}

	e := NewEncoder()
	require.Equal(t, Done, e.WriteValue(v))

	// encoding/json also sorts map keys and uses the same float form,
	// so the bytes must match exactly.
	want, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, string(want), string(e.Bytes()))
}

func TestWriteValueScalars(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{"hi\n", `"hi\n"`},
		{3.14, "3.14"},
		{float32(0.5), "0.5"},
		{int(-7), "-7"},
		{int64(1 << 40), "1099511627776"},
		{uint(8), "8"},
		{uint64(9), "9"},
		{json.Number("1e100"), "1e100"},
	}

	for _, tc := range cases {
		e := NewEncoder()
		require.Equal(t, Done, e.WriteValue(tc.in), "value %v", tc.in)
		require.Equal(t, tc.want, string(e.Bytes()))
	}
}

func TestWriteValueMarshalFallback(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}

	e := NewEncoder()
	e.WriteArrayStart()
	require.NoError(t, e.WriteValue(point{1, 2}))
	require.Equal(t, Done, e.WriteArrayEnd())
	require.Equal(t, `[{"x":1,"y":2}]`, string(e.Bytes()))
}

package jsonb

import (
	"encoding/json"
	"sort"
)

// WriteValue writes an arbitrary Go value as one JSON value. Maps,
// slices and the scalar kinds produced by encoding/json decoding
// (bool, string, float64, json.Number, nil) are emitted directly
// through the builder, with map keys in sorted order. Anything else is
// marshalled with encoding/json and forwarded through the raw-token
// path.
func (e *Encoder) WriteValue(v any) error {
	switch v := v.(type) {
	case nil:
		return e.WriteNull()
	case bool:
		return e.WriteBool(v)
	case string:
		return e.WriteString(v)
	case float64:
		return e.WriteNumber(v)
	case float32:
		return e.WriteNumber(float64(v))
	case int:
		return e.WriteInt(int64(v))
	case int64:
		return e.WriteInt(v)
	case uint:
		return e.WriteUint(uint64(v))
	case uint64:
		return e.WriteUint(v)
	case json.Number:
		return e.WriteToken(v.String())
	case map[string]any:
		return e.writeMap(v)
	case []any:
		return e.writeSlice(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return e.WriteToken(string(data))
	}
}

func (e *Encoder) writeMap(m map[string]any) error {
	if err := e.WriteObjectStart(); err != nil {
		return err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := e.WriteEscapedKey(k); err != nil {
			return err
		}
		if err := e.WriteValue(m[k]); err != nil {
			return err
		}
	}
	return e.WriteObjectEnd()
}

func (e *Encoder) writeSlice(s []any) error {
	if err := e.WriteArrayStart(); err != nil {
		return err
	}
	for _, v := range s {
		if err := e.WriteValue(v); err != nil {
			return err
		}
	}
	return e.WriteArrayEnd()
}

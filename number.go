package jsonb

import (
	"math"
	"strconv"
)

// WriteNumber writes v using the shortest decimal form that round-trips
// the float64 value. NaN and infinities have no JSON representation and
// return ErrNumber with no state change.
func (b *Builder) WriteNumber(buf []byte, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNumber
	}
	return writeScalar(b, buf, "WriteNumber", appendFloat(b.scratch[:0], v))
}

// WriteInt writes v in base 10.
func (b *Builder) WriteInt(buf []byte, v int64) error {
	return writeScalar(b, buf, "WriteInt", strconv.AppendInt(b.scratch[:0], v, 10))
}

// WriteUint writes v in base 10.
func (b *Builder) WriteUint(buf []byte, v uint64) error {
	return writeScalar(b, buf, "WriteUint", strconv.AppendUint(b.scratch[:0], v, 10))
}

// appendFloat formats v the way encoding/json does: shortest
// round-trip precision, plain decimal notation for the common range
// and exponent form outside it, with single-digit exponents unpadded.
func appendFloat(dst []byte, v float64) []byte {
	format := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, v, format, -1, 64)
	if format == 'e' {
		// 1e-09 -> 1e-9
		if n := len(dst); n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

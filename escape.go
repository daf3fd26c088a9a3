package jsonb

const hexDigits = "0123456789abcdef"

// Escape action per byte value: 0 copies the byte verbatim, 'u' takes
// the six-byte \u00XX form, anything else is the letter following the
// backslash in a two-byte escape.
var escTable [256]byte

func init() {
	for c := 0; c < 0x20; c++ {
		escTable[c] = 'u'
	}
	escTable['\b'] = 'b'
	escTable['\f'] = 'f'
	escTable['\n'] = 'n'
	escTable['\r'] = 'r'
	escTable['\t'] = 't'
	escTable['"'] = '"'
	escTable['\\'] = '\\'
}

// escapeExtra returns how many bytes escaping adds to len(s). It is the
// sizing pass: nothing is written, so a capacity check can run before
// any byte is committed.
func escapeExtra[T ~string | ~[]byte](s T) int {
	extra := 0
	for i := 0; i < len(s); i++ {
		switch escTable[s[i]] {
		case 0:
		case 'u':
			extra += 5
		default:
			extra++
		}
	}
	return extra
}

// escapeCopy writes the escaped form of s into dst and returns the
// number of bytes written. dst must hold len(s)+escapeExtra(s) bytes.
func escapeCopy[T ~string | ~[]byte](dst []byte, s T) int {
	p := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch e := escTable[c]; e {
		case 0:
			dst[p] = c
			p++
		case 'u':
			dst[p] = '\\'
			dst[p+1] = 'u'
			dst[p+2] = '0'
			dst[p+3] = '0'
			dst[p+4] = hexDigits[c>>4]
			dst[p+5] = hexDigits[c&0x0F]
			p += 6
		default:
			dst[p] = '\\'
			dst[p+1] = e
			p += 2
		}
	}
	return p
}

// AppendEscape appends the JSON string-literal encoding of s, without
// surrounding quotes, to dst and returns the extended slice. Bytes are
// not validated as UTF-8; anything outside the escape set is copied
// through untouched.
func AppendEscape(dst []byte, s string) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, len(s)+escapeExtra(s))...)
	escapeCopy(dst[n:], s)
	return dst
}

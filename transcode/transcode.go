// Package transcode re-encodes JSON documents through the jsonb
// builder, producing compact or colorized output.
package transcode

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"

	jsonb "github.com/ThadThompson/jsonb"
)

var (
	errTrailingData = errors.New("transcode: trailing data after top-level value")
	errBadDelim     = errors.New("transcode: unexpected delimiter")
)

// A Transcoder reads one JSON document token by token and replays it
// through a jsonb.Encoder.
type Transcoder struct {
	enc   *jsonb.Encoder
	style *Style
}

func New() *Transcoder {
	return &Transcoder{enc: jsonb.NewEncoder()}
}

// SetStyle enables colorized output. A nil style emits plain bytes.
func (t *Transcoder) SetStyle(s *Style) {
	t.style = s
}

// SetTrace installs a state-transition observer on the underlying
// encoder.
func (t *Transcoder) SetTrace(fn jsonb.TraceFunc) {
	t.enc.SetTrace(fn)
}

// Reflow re-encodes exactly one JSON document from r onto w. The
// output is the compact form, re-escaped by the builder.
func (t *Transcoder) Reflow(r io.Reader, w io.Writer) error {

	bw := bufio.NewWriter(w)
	dec := json.NewDecoder(r)
	dec.UseNumber()
	t.enc.Reset()

	for {
		token, err := dec.Token()
		if err == io.EOF {
			bw.Flush()
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			bw.Flush()
			return err
		}

		mark := t.enc.Len()
		class := classPunct
		var werr error

		switch token := token.(type) {
		case json.Delim:
			switch token {
			case json.Delim('{'):
				werr = t.enc.WriteObjectStart()
			case json.Delim('}'):
				werr = t.enc.WriteObjectEnd()
			case json.Delim('['):
				werr = t.enc.WriteArrayStart()
			case json.Delim(']'):
				werr = t.enc.WriteArrayEnd()
			default:
				bw.Flush()
				return errBadDelim
			}

		case string:
			switch t.enc.State() {
			case jsonb.StateObjectKeyOrClose, jsonb.StateObjectNextKeyOrClose:
				class = classKey
				werr = t.enc.WriteEscapedKey(token)
			default:
				class = classString
				werr = t.enc.WriteString(token)
			}

		case json.Number:
			class = classNumber
			werr = t.enc.WriteToken(token.String())

		case bool:
			class = classLiteral
			werr = t.enc.WriteBool(token)

		case nil:
			class = classLiteral
			werr = t.enc.WriteNull()
		}

		done := werr == jsonb.Done
		if werr != nil && !done {
			bw.Flush()
			return werr
		}

		// Committed bytes for this token, including any separator.
		t.emit(bw, t.enc.Bytes()[mark:], class)

		if done {
			// More() treats a stray "]" or "}" as end of input, so ask
			// for a token: only clean EOF means the document was alone.
			if _, terr := dec.Token(); terr != io.EOF {
				bw.Flush()
				return errTrailingData
			}
			return bw.Flush()
		}
	}
}

func (t *Transcoder) emit(w io.Writer, span []byte, class tokenClass) {
	if t.style == nil {
		w.Write(span)
		return
	}
	if len(span) > 0 && span[0] == ',' {
		t.style.paint(w, span[:1], classPunct)
		span = span[1:]
	}
	// A key span ends in ':' which reads as punctuation.
	if class == classKey && len(span) > 0 && span[len(span)-1] == ':' {
		t.style.paint(w, span[:len(span)-1], class)
		t.style.paint(w, span[len(span)-1:], classPunct)
		return
	}
	t.style.paint(w, span, class)
}

// Minify writes the compact form of the JSON document in r onto w.
func Minify(r io.Reader, w io.Writer) error {
	return New().Reflow(r, w)
}

// Colorize writes the compact form of the JSON document in r onto w
// with ANSI colors per token class.
func Colorize(r io.Reader, w io.Writer) error {
	t := New()
	t.SetStyle(DefaultStyle())
	return t.Reflow(r, w)
}

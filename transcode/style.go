package transcode

import (
	"io"

	"github.com/amterp/color"
)

type tokenClass uint8

const (
	classPunct tokenClass = iota
	classKey
	classString
	classNumber
	classLiteral
)

// A Style selects the colors used for each token class. Nil fields are
// written without color.
type Style struct {
	Punct   *color.Color
	Key     *color.Color
	String  *color.Color
	Number  *color.Color
	Literal *color.Color
}

// DefaultStyle mirrors the usual terminal JSON palette: bold blue
// keys, green strings, cyan numbers, yellow true/false/null.
func DefaultStyle() *Style {
	return &Style{
		Key:     color.New(color.FgBlue, color.Bold),
		String:  color.New(color.FgGreen),
		Number:  color.New(color.FgCyan),
		Literal: color.New(color.FgYellow),
	}
}

func (s *Style) paint(w io.Writer, span []byte, class tokenClass) {
	var c *color.Color
	switch class {
	case classKey:
		c = s.Key
	case classString:
		c = s.String
	case classNumber:
		c = s.Number
	case classLiteral:
		c = s.Literal
	default:
		c = s.Punct
	}
	if c == nil {
		w.Write(span)
		return
	}
	c.Fprint(w, string(span))
}

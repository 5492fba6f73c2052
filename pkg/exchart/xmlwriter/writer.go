// Package xmlwriter writes OOXML parts token by token.
//
// Element and attribute order is exactly the call order, and elements with
// no children are self-closed, which is what Excel writes and expects.
package xmlwriter

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Declaration is the standalone XML declaration written at the top of every part.
const Declaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

var (
	attrEscaper = strings.NewReplacer(`&`, `&amp;`, `"`, `&quot;`, `<`, `&lt;`, `>`, `&gt;`, "\n", `&#xA;`)
	textEscaper = strings.NewReplacer(`&`, `&amp;`, `<`, `&lt;`, `>`, `&gt;`)
)

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value string
}

// A builds an attribute, formatting ints, floats and bools the way Excel does
// (bools as 0/1, floats without trailing zeros).
func A(key string, value any) Attr {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case float64:
		s = FormatFloat(v)
	case bool:
		if v {
			s = "1"
		} else {
			s = "0"
		}
	default:
		panic("xmlwriter: unsupported attribute value type")
	}
	return Attr{Key: key, Value: s}
}

// FormatFloat formats a number using the shortest representation.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Writer emits XML tokens to an underlying stream. The first write error is
// kept and returned by Flush; later calls become no-ops.
type Writer struct {
	w   *bufio.Writer
	err error
}

// New returns a Writer buffering output to w.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Declaration writes the XML declaration.
func (x *Writer) Declaration() {
	x.write(Declaration)
}

// Start writes an opening tag.
func (x *Writer) Start(tag string, attrs ...Attr) {
	x.open(tag, attrs)
	x.write(">")
}

// Empty writes a self-closed tag.
func (x *Writer) Empty(tag string, attrs ...Attr) {
	x.open(tag, attrs)
	x.write("/>")
}

// Data writes an element holding escaped character data.
func (x *Writer) Data(tag, data string, attrs ...Attr) {
	x.open(tag, attrs)
	x.write(">")
	x.write(textEscaper.Replace(data))
	x.write("</" + tag + ">")
}

// End writes a closing tag.
func (x *Writer) End(tag string) {
	x.write("</" + tag + ">")
}

// Flush writes buffered output and reports the first error encountered.
func (x *Writer) Flush() error {
	if x.err != nil {
		return x.err
	}
	x.err = x.w.Flush()
	return x.err
}

// Err returns the first error encountered so far.
func (x *Writer) Err() error {
	return x.err
}

func (x *Writer) open(tag string, attrs []Attr) {
	x.write("<" + tag)
	for _, a := range attrs {
		x.write(" " + a.Key + `="` + attrEscaper.Replace(a.Value) + `"`)
	}
}

func (x *Writer) write(s string) {
	if x.err != nil {
		return
	}
	_, x.err = x.w.WriteString(s)
}

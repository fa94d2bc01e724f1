// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bufio"
	"io"

	"github.com/creachadair/jsonv/internal/escape"

	"go4.org/mem"
)

// A Formatter carries the settings for pretty-printing JSON values.
// A zero value is ready for use with default settings.
type Formatter struct {
	Prefix string // written at the start of each line after the first
	Indent string // one level of indentation; "" means two spaces
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

// Format renders a pretty-printed representation of v to w with default
// settings, followed by a newline.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// RenderIndent renders v as indented JSON. Each element of an array and each
// member of an object starts a new line beginning with prefix, indented by
// one copy of indent per level of nesting. Empty containers are rendered as
// "{}" and "[]".
func RenderIndent(v Value, prefix, indent string) string {
	f := Formatter{Prefix: prefix, Indent: indent}
	return string(f.Append(nil, v))
}

// Format renders a pretty-printed representation of v to w using the settings
// from f, followed by a newline.
func (f Formatter) Format(w io.Writer, v Value) error {
	bw := bufio.NewWriter(w)
	bw.Write(f.Append(nil, v))
	bw.WriteByte('\n')
	return bw.Flush()
}

// Append appends the pretty-printed representation of v to dst, and returns
// the extended slice.
func (f Formatter) Append(dst []byte, v Value) []byte { return f.appendValue(dst, v, "") }

func (f Formatter) appendValue(buf []byte, v Value, indent string) []byte {
	switch t := v.(type) {
	case *Object:
		if t.Len() == 0 {
			return append(buf, "{}"...)
		}
		inner := indent + f.indent()
		buf = append(buf, '{')
		for i, m := range t.members {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = f.newline(buf, inner)
			buf = escape.AppendQuoted(buf, mem.S(m.Key))
			buf = append(buf, ": "...)
			buf = f.appendValue(buf, m.Value, inner)
		}
		buf = f.newline(buf, indent)
		return append(buf, '}')

	case Array:
		if t.Len() == 0 {
			return append(buf, "[]"...)
		}
		inner := indent + f.indent()
		buf = append(buf, '[')
		for i, elt := range t.values {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = f.newline(buf, inner)
			buf = f.appendValue(buf, elt, inner)
		}
		buf = f.newline(buf, indent)
		return append(buf, ']')

	default:
		return AppendJSON(buf, v)
	}
}

func (f Formatter) newline(buf []byte, indent string) []byte {
	buf = append(buf, '\n')
	buf = append(buf, f.Prefix...)
	return append(buf, indent...)
}

// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"math"
	"strconv"

	"github.com/creachadair/jsonv/internal/escape"

	"go4.org/mem"
)

// Render renders v as compact, canonical JSON text.
//
// Object members are written in order, with no insignificant whitespace.
// Integral numbers with magnitude below 1e21 are written in plain decimal
// notation; other numbers use the shortest representation that parses back
// to the same float64. A Number that is not finite (which the parser never
// produces) is written as null.
func Render(v Value) string { return string(AppendJSON(nil, v)) }

// AppendJSON appends the compact JSON rendering of v to dst and returns the
// extended slice.
func AppendJSON(dst []byte, v Value) []byte {
	switch t := v.(type) {
	case *Object:
		dst = append(dst, '{')
		for i, m := range t.members {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = escape.AppendQuoted(dst, mem.S(m.Key))
			dst = append(dst, ':')
			dst = AppendJSON(dst, m.Value)
		}
		return append(dst, '}')
	case Array:
		dst = append(dst, '[')
		for i, elt := range t.values {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendJSON(dst, elt)
		}
		return append(dst, ']')
	case String:
		return escape.AppendQuoted(dst, mem.S(string(t)))
	case Number:
		return appendNumber(dst, float64(t))
	case Bool, null:
		return append(dst, t.JSON()...)
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func appendNumber(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return append(dst, "null"...)
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.AppendFloat(dst, f, 'f', -1, 64)
	default:
		return strconv.AppendFloat(dst, f, 'g', -1, 64)
	}
}

// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an in-memory tree model for JSON values, a parser that
// constructs trees from JSON source, and renderers that turn a tree back into
// JSON text.
//
// A tree is built once, by [Parse] or by the constructors in this package,
// and is not modified afterward. The variant set is closed: every Value is
// one of *Object, Array, String, Number, Bool, or Null.
package ast

import (
	"fmt"
	"math"

	"github.com/creachadair/jsonv"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// Kind reports which variant of value this is.
	Kind() Kind

	// JSON renders the value as compact JSON text.
	JSON() string

	isValue()
}

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota
	ObjectKind
	ArrayKind
	StringKind
	NumberKind
	BoolKind
	NullKind
)

var kindStr = [...]string{
	Invalid:    "invalid",
	ObjectKind: "object",
	ArrayKind:  "array",
	StringKind: "string",
	NumberKind: "number",
	BoolKind:   "bool",
	NullKind:   "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// KindOf reports the kind of v, or Invalid if v == nil.
func KindOf(v Value) Kind {
	if v == nil {
		return Invalid
	}
	return v.Kind()
}

// A String is a JSON string value. Its contents are decoded text.
type String string

func (String) Kind() Kind { return StringKind }
func (String) isValue()   {}

func (s String) JSON() string { return jsonv.Quote(string(s)) }

// A Number is a JSON number value.
type Number float64

// Int returns an integer-valued Number.
func Int(z int64) Number { return Number(z) }

func (Number) Kind() Kind { return NumberKind }
func (Number) isValue()   {}

func (n Number) JSON() string { return string(appendNumber(nil, float64(n))) }

// Float64 returns the value of n.
func (n Number) Float64() float64 { return float64(n) }

// IsInt reports whether n is an integer that can be represented exactly as
// an int64.
func (n Number) IsInt() bool {
	f := float64(n)
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}

// Int64 returns n truncated to an int64.
func (n Number) Int64() int64 { return int64(n) }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }
func (Bool) isValue()   {}

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

type null struct{}

func (null) Kind() Kind     { return NullKind }
func (null) isValue()       {}
func (null) JSON() string   { return "null" }
func (null) String() string { return "null" }

// Null is the JSON null value.
var Null Value = null{}

func orNull(v Value) Value {
	if v == nil {
		return Null
	}
	return v
}

// ToValue converts a string, integer, float, bool, nil, or Value into a
// Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint32:
		return Int(int64(t))
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	default:
		panic(fmt.Sprintf("cannot convert %T to a Value", v))
	}
}

// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import "github.com/creachadair/jsonv"

// AsObject returns v as an object, or reports a TypeMismatch error.
func AsObject(v Value) (*Object, error) { return as[*Object](v, ObjectKind) }

// AsArray returns v as an array, or reports a TypeMismatch error.
func AsArray(v Value) (Array, error) { return as[Array](v, ArrayKind) }

// AsString returns the text of a string value, or reports a TypeMismatch
// error.
func AsString(v Value) (string, error) {
	s, err := as[String](v, StringKind)
	return string(s), err
}

// AsNumber returns the value of a number, or reports a TypeMismatch error.
func AsNumber(v Value) (float64, error) {
	n, err := as[Number](v, NumberKind)
	return float64(n), err
}

// AsBool returns the value of a Boolean, or reports a TypeMismatch error.
func AsBool(v Value) (bool, error) {
	b, err := as[Bool](v, BoolKind)
	return bool(b), err
}

// IsNull reports whether v is the null value.
func IsNull(v Value) bool { return KindOf(v) == NullKind }

func as[T Value](v Value, want Kind) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	return zero, &jsonv.AccessError{
		Kind: jsonv.TypeMismatch,
		Want: want.String(),
		Got:  KindOf(v).String(),
	}
}

// Equal reports whether a and b are structurally equal: the same variant
// with equal contents. Object members are compared in order.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i, m := range x.members {
			n := y.members[i]
			if m.Key != n.Key || !Equal(m.Value, n.Value) {
				return false
			}
		}
		return true
	case Array:
		y, ok := b.(Array)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i, v := range x.values {
			if !Equal(v, y.values[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		return KindOf(b) == a.Kind() && a == b
	}
}

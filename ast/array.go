// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"iter"
	"slices"

	"github.com/creachadair/jsonv"
)

// An Array is a sequence of values.
type Array struct {
	values []Value
}

// NewArray constructs an array of the given values, in order.
// Nil elements are replaced by Null.
func NewArray(vs ...Value) Array {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = orNull(v)
	}
	return Array{values: out}
}

func (Array) Kind() Kind { return ArrayKind }
func (Array) isValue()   {}

func (a Array) JSON() string { return Render(a) }

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a.values)) }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a.values) }

// Values returns a copy of the elements of a.
func (a Array) Values() []Value { return slices.Clone(a.values) }

// All returns an iterator over the indexes and elements of a.
func (a Array) All() iter.Seq2[int, Value] { return slices.All(a.values) }

// Index returns the element of a at offset i. If i is not in the range
// 0 ≤ i < a.Len(), it reports an IndexOutOfRange error.
func (a Array) Index(i int) (Value, error) {
	if i < 0 || i >= len(a.values) {
		return nil, &jsonv.AccessError{Kind: jsonv.IndexOutOfRange, Index: i, Len: len(a.values)}
	}
	return a.values[i], nil
}

// ObjectAt returns the object value at offset i of a.
func (a Array) ObjectAt(i int) (*Object, error) { return indexAs(a, i, AsObject) }

// ArrayAt returns the array value at offset i of a.
func (a Array) ArrayAt(i int) (Array, error) { return indexAs(a, i, AsArray) }

// StringAt returns the string value at offset i of a.
func (a Array) StringAt(i int) (string, error) { return indexAs(a, i, AsString) }

// NumberAt returns the numeric value at offset i of a.
func (a Array) NumberAt(i int) (float64, error) { return indexAs(a, i, AsNumber) }

// BoolAt returns the Boolean value at offset i of a.
func (a Array) BoolAt(i int) (bool, error) { return indexAs(a, i, AsBool) }

func indexAs[T any](a Array, i int, as func(Value) (T, error)) (T, error) {
	v, err := a.Index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return as(v)
}

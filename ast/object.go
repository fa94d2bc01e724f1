// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"iter"
	"slices"

	"github.com/creachadair/jsonv"
)

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
// A nil value is replaced by Null.
func Field(key string, value Value) Member { return Member{Key: key, Value: orNull(value)} }

// An Object is an ordered collection of key-value members. Members keep the
// order in which their keys first appeared. Keys are unique: when a key
// repeats, the later value replaces the earlier one in place.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject constructs an object from the given members, in order.
// Members with a nil value get the value Null.
func NewObject(ms ...Member) *Object {
	o := new(Object)
	for _, m := range ms {
		o.set(m.Key, orNull(m.Value))
	}
	return o
}

// set adds or replaces the member with the given key.
func (o *Object) set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

func (*Object) Kind() Kind { return ObjectKind }
func (*Object) isValue()   {}

func (o *Object) JSON() string { return Render(o) }

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", o.Len()) }

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.members) }

// Keys returns the keys of o in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns a copy of the members of o in order.
func (o *Object) Members() []Member { return slices.Clone(o.members) }

// All returns an iterator over the keys and values of o in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, m := range o.members {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Lookup returns the value of the member of o with the given key, and reports
// whether it was found. If not, it returns nil, false.
func (o *Object) Lookup(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Has reports whether o has a member with the given key.
func (o *Object) Has(key string) bool { _, ok := o.index[key]; return ok }

// Get returns the value of the member of o with the given key. If there is
// no such member, it reports a KeyNotFound error.
func (o *Object) Get(key string) (Value, error) {
	if v, ok := o.Lookup(key); ok {
		return v, nil
	}
	return nil, &jsonv.AccessError{Kind: jsonv.KeyNotFound, Key: key}
}

// GetObject returns the object value of key in o.
func (o *Object) GetObject(key string) (*Object, error) { return getAs(o, key, AsObject) }

// GetArray returns the array value of key in o.
func (o *Object) GetArray(key string) (Array, error) { return getAs(o, key, AsArray) }

// GetString returns the string value of key in o.
func (o *Object) GetString(key string) (string, error) { return getAs(o, key, AsString) }

// GetNumber returns the numeric value of key in o.
func (o *Object) GetNumber(key string) (float64, error) { return getAs(o, key, AsNumber) }

// GetBool returns the Boolean value of key in o.
func (o *Object) GetBool(key string) (bool, error) { return getAs(o, key, AsBool) }

func getAs[T any](o *Object, key string, as func(Value) (T, error)) (T, error) {
	v, err := o.Get(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return as(v)
}

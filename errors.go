// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jsonv

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors reported by this module. An ErrorKind is
// itself an error, so that callers can test for a kind with errors.Is:
//
//	if errors.Is(err, jsonv.KeyNotFound) { ... }
type ErrorKind int

// Constants defining the error kinds.
const (
	_ ErrorKind = iota

	MalformedLiteral // a string or number literal is lexically invalid
	UnknownToken     // an unrecognized character or keyword
	UnexpectedToken  // a token the grammar does not permit here
	TrailingContent  // input continues after a complete value
	DepthExceeded    // nesting exceeds the configured limit

	TypeMismatch    // a value does not have the requested type
	KeyNotFound     // an object has no member with the requested key
	IndexOutOfRange // an array index is outside [0, len)
)

var kindText = [...]string{
	MalformedLiteral: "malformed literal",
	UnknownToken:     "unknown token",
	UnexpectedToken:  "unexpected token",
	TrailingContent:  "trailing content",
	DepthExceeded:    "depth exceeded",
	TypeMismatch:     "type mismatch",
	KeyNotFound:      "key not found",
	IndexOutOfRange:  "index out of range",
}

func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(kindText) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindText[k]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// SyntaxError is the concrete type of errors reported by the tokenizer and
// the parser. A SyntaxError aborts the whole parse.
type SyntaxError struct {
	Kind     ErrorKind
	Location LineCol // where the offending token begins
	Offset   int     // byte offset of the offending token
	Message  string

	// Token describes the offending token. For parser errors it is the label
	// of a complete token, such as `string "x"` or "end of input". For
	// tokenizer errors it is the raw source text of the malformed token up to
	// the point of failure, with escapes not decoded and without the opening
	// quotation mark of a string.
	Token string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %v: %s", e.Location, e.Kind, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// Is reports whether target is the ErrorKind of e.
func (e *SyntaxError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// AccessError is the concrete type of errors reported by the typed accessors
// of a value tree. An AccessError concerns only the access that produced it.
type AccessError struct {
	Kind ErrorKind

	Key   string // for KeyNotFound
	Index int    // for IndexOutOfRange
	Len   int    // for IndexOutOfRange
	Want  string // for TypeMismatch
	Got   string // for TypeMismatch
}

// Error satisfies the error interface.
func (e *AccessError) Error() string {
	switch e.Kind {
	case KeyNotFound:
		return fmt.Sprintf("key %q not found", e.Key)
	case IndexOutOfRange:
		return fmt.Sprintf("index %d out of range (n=%d)", e.Index, e.Len)
	case TypeMismatch:
		return fmt.Sprintf("value is %s, not %s", e.Got, e.Want)
	}
	return e.Kind.String()
}

// Is reports whether target is the ErrorKind of e.
func (e *AccessError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// KindOf reports the ErrorKind of err, or 0 if err does not carry one.
func KindOf(err error) ErrorKind {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Kind
	}
	var ae *AccessError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return 0
}

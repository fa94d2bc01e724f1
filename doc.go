// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsonv implements a strict JSON tokenizer, together with the error
// and location types shared by the packages of this module.
//
// # Sources
//
// A Source reads Unicode text from an io.Reader one rune at a time, and
// tracks the byte offset, line, and column of the next rune. Invalid UTF-8 is
// delivered as utf8.RuneError so that the tokenizer can reject it where the
// grammar does not permit it.
//
// # Tokenizing
//
// Tokenize consumes a whole Source and returns its complete token sequence,
// always terminated by an End token:
//
//	ts, err := jsonv.Tokenize(jsonv.NewSource(input))
//	if err != nil {
//	   log.Fatalf("Tokenize: %v", err)
//	}
//	for loc, tok := range ts.All() {
//	   log.Printf("%v: %v", loc, tok)
//	}
//
// Tokenization stops at the first lexical error. The grammar is strict
// RFC 8259: no comments, no trailing commas, no single-quoted strings, and
// no non-finite numbers.
//
// # Errors
//
// Errors reported by the tokenizer and the parser in package ast have
// concrete type *SyntaxError. Errors reported by the typed accessors of a
// value tree have concrete type *AccessError. Both carry an ErrorKind, which
// is itself an error value for use with errors.Is:
//
//	if errors.Is(err, jsonv.DepthExceeded) {
//	   log.Print("Input is nested too deeply")
//	}
//
// See package ast for the value model, the parser, and the renderer.
package jsonv

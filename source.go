// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jsonv

import (
	"bufio"
	"io"
	"strings"
)

// A Source delivers the runes of an input one at a time, with a single rune
// of lookahead. A Source is not safe for concurrent use; each tokenizer call
// should have its own.
type Source struct {
	r *bufio.Reader

	ch     rune // the peeked rune, if full
	size   int  // size in bytes of ch
	full   bool // ch holds an unconsumed rune
	done   bool // the reader is exhausted (or failed)
	err    error
	last   int // size in bytes of the last-consumed rune
	off    int // offset of the next unconsumed rune
	line   int // 0-based
	column int
}

// NewSource constructs a Source that reads runes from r.
func NewSource(r io.Reader) *Source {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Source{r: br}
}

// NewSourceString constructs a Source that reads the runes of s.
func NewSourceString(s string) *Source { return NewSource(strings.NewReader(s)) }

// Peek reports the next rune of the input without consuming it.
// At the end of the input it returns 0, false.
func (s *Source) Peek() (rune, bool) {
	if !s.fill() {
		return 0, false
	}
	return s.ch, true
}

// Next consumes and returns the next rune of the input.
// At the end of the input it returns 0, false.
func (s *Source) Next() (rune, bool) {
	if !s.fill() {
		return 0, false
	}
	s.full = false
	s.last = s.size
	s.off += s.size
	if s.ch == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column += s.size
	}
	return s.ch, true
}

// Offset reports the byte offset of the next unconsumed rune.
func (s *Source) Offset() int { return s.off }

// Pos reports the line and column of the next unconsumed rune.
func (s *Source) Pos() LineCol { return LineCol{Line: s.line + 1, Column: s.column} }

// Err reports the error, other than io.EOF, that ended the input, if any.
// Reaching the end of the input is not an error.
func (s *Source) Err() error { return s.err }

func (s *Source) fill() bool {
	if s.full {
		return true
	} else if s.done {
		return false
	}
	ch, nb, err := s.r.ReadRune()
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = err
		}
		return false
	}
	s.ch, s.size, s.full = ch, nb, true
	return true
}

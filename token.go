// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonv

import (
	"fmt"
	"iter"
	"strconv"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	String              // quoted string
	Number              // number
	True                // constant: true
	False               // constant: false
	Null                // constant: null
	End                 // end of input
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	String:  "string",
	Number:  "number",
	True:    "true",
	False:   "false",
	Null:    "null",
	End:     "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical unit of JSON. The zero Token is Invalid.
//
// A String token carries its decoded text, and a Number token carries both
// its literal spelling and its value. A Token does not record where it
// occurred in the source; see [Tokens.LocationAt].
type Token struct {
	kind Kind
	text string
	num  float64
}

// Kind reports the kind of t.
func (t Token) Kind() Kind { return t.kind }

// Text reports the text of t. For a String this is the decoded string, for a
// Number the literal as written. Other tokens report their fixed spelling,
// and End reports "".
func (t Token) Text() string {
	switch t.kind {
	case String, Number:
		return t.text
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LSquare:
		return "["
	case RSquare:
		return "]"
	case Comma:
		return ","
	case Colon:
		return ":"
	case True, False, Null:
		return t.kind.String()
	}
	return ""
}

// Float64 reports the value of a Number token, or 0 for other kinds.
func (t Token) Float64() float64 { return t.num }

// Equal reports whether t and u are the same token.
func (t Token) Equal(u Token) bool {
	return t.kind == u.kind && t.text == u.text && t.num == u.num
}

// String returns a human-readable label for t, used in diagnostics.
func (t Token) String() string {
	switch t.kind {
	case String:
		return "string " + strconv.Quote(t.text)
	case Number:
		return "number " + t.text
	}
	return t.kind.String()
}

// Constructors for tokens, mainly useful for tests and synthesized input.

// MakeToken returns a token of a kind that carries no data.
// It panics if k is String or Number.
func MakeToken(k Kind) Token {
	if k == String || k == Number {
		panic(fmt.Sprintf("MakeToken: %v requires a value", k))
	}
	return Token{kind: k}
}

// StringToken returns a String token with the given decoded text.
func StringToken(s string) Token { return Token{kind: String, text: s} }

// NumberToken returns a Number token for the given literal. It reports an
// error if lit is not a finite float64 in JSON number syntax.
func NumberToken(lit string) (Token, error) {
	ts, err := TokenizeString(lit)
	if err != nil {
		return Token{}, err
	} else if ts.Len() != 2 || ts.At(0).kind != Number {
		return Token{}, fmt.Errorf("invalid number literal %q", lit)
	}
	return ts.At(0), nil
}

// Tokens is a complete, ordered sequence of tokens with a read cursor. The
// last token of a sequence is always End. The tokens themselves are fixed
// when the sequence is constructed; only the cursor moves.
type Tokens struct {
	toks []Token
	locs []Location
	cur  int
}

// Len reports the number of tokens in ts, including the End marker.
func (ts *Tokens) Len() int { return len(ts.toks) }

// At returns the token at index i, 0 ≤ i < ts.Len().
func (ts *Tokens) At(i int) Token { return ts.toks[i] }

// LocationAt returns the source location of the token at index i.
func (ts *Tokens) LocationAt(i int) Location { return ts.locs[i] }

// Pos reports the index of the current token.
func (ts *Tokens) Pos() int { return ts.cur }

// Peek returns the current token without advancing the cursor.
func (ts *Tokens) Peek() Token { return ts.toks[ts.cur] }

// Location returns the source location of the current token.
func (ts *Tokens) Location() Location { return ts.locs[ts.cur] }

// Next returns the current token and advances the cursor. Once the cursor
// reaches End it stays there.
func (ts *Tokens) Next() Token {
	tok := ts.toks[ts.cur]
	if ts.cur < len(ts.toks)-1 {
		ts.cur++
	}
	return tok
}

// All returns an iterator over the tokens of ts in order, paired with their
// locations. It does not use or move the cursor.
func (ts *Tokens) All() iter.Seq2[Location, Token] {
	return func(yield func(Location, Token) bool) {
		for i, tok := range ts.toks {
			if !yield(ts.locs[i], tok) {
				return
			}
		}
	}
}

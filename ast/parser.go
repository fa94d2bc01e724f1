// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/creachadair/jsonv"
)

// DefaultMaxDepth is the nesting limit used when ParseOptions.MaxDepth is 0.
const DefaultMaxDepth = 10000

// ParseOptions control the behavior of the parser.
// A zero value is ready for use with default settings.
type ParseOptions struct {
	// MaxDepth bounds the nesting depth of objects and arrays. If zero,
	// DefaultMaxDepth is used. If negative, nesting is not limited.
	MaxDepth int
}

func (o ParseOptions) maxDepth() int {
	if o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Parse parses text as a single complete JSON value. Leading and trailing
// whitespace is permitted. In case of error, no value is returned and the
// error has concrete type [*jsonv.SyntaxError].
func Parse(text string) (Value, error) { return ParseOptions{}.Parse(text) }

// ParseBytes is as Parse, but reads its input from a byte slice.
func ParseBytes(data []byte) (Value, error) { return ParseOptions{}.ParseReader(bytes.NewReader(data)) }

// ParseReader is as Parse, but reads its input from r.  A read error from r
// fails the parse, and the error returned wraps it.
func ParseReader(r io.Reader) (Value, error) { return ParseOptions{}.ParseReader(r) }

// ParseTokens parses a single complete JSON value from ts, starting at its
// current position.
func ParseTokens(ts *jsonv.Tokens) (Value, error) { return ParseOptions{}.ParseTokens(ts) }

// MustParse parses text as by Parse, and panics if parsing fails.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("ast.MustParse: %v", err))
	}
	return v
}

// Parse parses text using the settings from o.
func (o ParseOptions) Parse(text string) (Value, error) {
	return o.ParseReader(strings.NewReader(text))
}

// ParseReader parses the contents of r using the settings from o.
func (o ParseOptions) ParseReader(r io.Reader) (Value, error) {
	ts, err := jsonv.Tokenize(jsonv.NewSource(r))
	if err != nil {
		return nil, err
	}
	return o.ParseTokens(ts)
}

// ParseTokens parses ts using the settings from o. After the value, the
// next token of ts must be End.
func (o ParseOptions) ParseTokens(ts *jsonv.Tokens) (_ Value, err error) {
	p := &parser{ts: ts, max: o.maxDepth()}
	defer p.recoverParseError(&err)

	v := p.parseValue()
	if tok := ts.Peek(); tok.Kind() != jsonv.End {
		panic(p.syntaxError(jsonv.TrailingContent, "unexpected %v after value", tok))
	}
	return v, nil
}

// A parser holds the state of one parse. Errors are propagated as panics of
// type *jsonv.SyntaxError, and recovered at the top level.
type parser struct {
	ts    *jsonv.Tokens
	max   int // maximum depth; < 0 means unlimited
	depth int
}

func (p *parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if err, ok := perr.(*jsonv.SyntaxError); ok {
			*errp = err
			return
		}
		panic(perr)
	}
}

// parseValue consumes a single value of any type.
func (p *parser) parseValue() Value {
	switch tok := p.ts.Peek(); tok.Kind() {
	case jsonv.LBrace:
		return p.parseObject()
	case jsonv.LSquare:
		return p.parseArray()
	case jsonv.String:
		p.ts.Next()
		return String(tok.Text())
	case jsonv.Number:
		p.ts.Next()
		return Number(tok.Float64())
	case jsonv.True, jsonv.False:
		p.ts.Next()
		return Bool(tok.Kind() == jsonv.True)
	case jsonv.Null:
		p.ts.Next()
		return Null
	case jsonv.End:
		panic(p.syntaxError(jsonv.UnexpectedToken, "expected value, got %v", tok))
	default:
		panic(p.syntaxError(jsonv.UnexpectedToken, "unexpected %v", tok))
	}
}

// parseObject consumes zero or more key:value object members.
// Precondition: token == LBrace.
func (p *parser) parseObject() Value {
	p.enter()
	p.ts.Next()

	obj := new(Object)
	if p.ts.Peek().Kind() == jsonv.RBrace {
		p.ts.Next()
		p.depth--
		return obj
	}
	for {
		key := p.expect(jsonv.String)
		p.expect(jsonv.Colon)
		obj.set(key.Text(), p.parseValue())

		// Check whether we have more members (",") or are done ("}").
		if tok := p.expect(jsonv.Comma, jsonv.RBrace); tok.Kind() == jsonv.RBrace {
			p.depth--
			return obj
		}
	}
}

// parseArray consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
func (p *parser) parseArray() Value {
	p.enter()
	p.ts.Next()

	var vs []Value
	if p.ts.Peek().Kind() == jsonv.RSquare {
		p.ts.Next()
		p.depth--
		return Array{}
	}
	for {
		vs = append(vs, p.parseValue())
		if tok := p.expect(jsonv.Comma, jsonv.RSquare); tok.Kind() == jsonv.RSquare {
			p.depth--
			return Array{values: vs}
		}
	}
}

func (p *parser) enter() {
	p.depth++
	if p.max >= 0 && p.depth > p.max {
		panic(p.syntaxError(jsonv.DepthExceeded, "nesting depth exceeds %d", p.max))
	}
}

// expect consumes and returns the current token, which must have one of the
// given kinds.
func (p *parser) expect(kinds ...jsonv.Kind) jsonv.Token {
	tok := p.ts.Peek()
	if !slices.Contains(kinds, tok.Kind()) {
		panic(p.syntaxError(jsonv.UnexpectedToken, "%s", tokLabel(kinds, tok)))
	}
	return p.ts.Next()
}

func (p *parser) syntaxError(kind jsonv.ErrorKind, msg string, args ...any) *jsonv.SyntaxError {
	loc := p.ts.Location()
	return &jsonv.SyntaxError{
		Kind:     kind,
		Location: loc.First,
		Offset:   loc.Pos,
		Token:    p.ts.Peek().String(),
		Message:  fmt.Sprintf(msg, args...),
	}
}

// tokLabel makes a human-readable summary string for the given token kinds.
func tokLabel(kinds []jsonv.Kind, got jsonv.Token) string {
	var exp string
	if len(kinds) == 1 {
		exp = kinds[0].String()
	} else {
		last := len(kinds) - 1
		ss := make([]string, last)
		for i, k := range kinds[:last] {
			ss[i] = k.String()
		}
		exp = strings.Join(ss, ", ") + " or " + kinds[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}

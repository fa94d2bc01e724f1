// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonv

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/jsonv/internal/escape"

	"go4.org/mem"
)

// TokenizeString is shorthand for Tokenize(NewSourceString(s)).
func TokenizeString(s string) (*Tokens, error) { return Tokenize(NewSourceString(s)) }

// Tokenize consumes src to exhaustion and returns the complete sequence of
// tokens it contains, terminated by an End token. In case of error, no tokens
// are returned and the error has concrete type [*SyntaxError].
func Tokenize(src *Source) (*Tokens, error) {
	t := &tokenizer{src: src}
	for {
		t.mark()
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		t.out.toks = append(t.out.toks, tok)
		t.out.locs = append(t.out.locs, Location{
			Span:  Span{Pos: t.pos, End: src.Offset()},
			First: t.first,
			Last:  src.Pos(),
		})
		if tok.kind == End {
			return &t.out, nil
		}
	}
}

// A tokenizer holds the state of a single call to Tokenize.
type tokenizer struct {
	src *Source
	buf bytes.Buffer // text of the current token
	out Tokens

	pos   int     // start offset of the current token
	first LineCol // start position of the current token
}

// mark records the start of a new token at the current input position.
func (t *tokenizer) mark() {
	t.buf.Reset()
	t.pos, t.first = t.src.Offset(), t.src.Pos()
}

func (t *tokenizer) next() (Token, error) {
	for {
		ch, ok := t.src.Peek()
		if !ok {
			if err := t.src.Err(); err != nil {
				return Token{}, t.fail(UnexpectedToken, err, "read failed: %v", err)
			}
			return Token{kind: End}, nil
		}

		// Discard whitespace.
		if isSpace(ch) {
			t.src.Next()
			t.mark()
			continue
		}

		// Handle punctuation.
		if k, ok := selfDelim(ch); ok {
			t.src.Next()
			return Token{kind: k}, nil
		}

		switch {
		case ch == '"':
			return t.scanString()
		case isNumStart(ch):
			return t.scanNumber()
		case isLetter(ch):
			return t.scanName()
		}
		return Token{}, t.fail(UnknownToken, nil, "unexpected %q", ch)
	}
}

func (t *tokenizer) scanString() (Token, error) {
	t.src.Next() // opening quotation mark
	for {
		ch, ok := t.src.Next()
		if !ok {
			return Token{}, t.failEOF("unterminated string")
		}
		switch {
		case ch == '"':
			dec, err := escape.Unquote(mem.B(t.buf.Bytes()))
			if err != nil {
				return Token{}, t.fail(MalformedLiteral, err, "invalid string: %v", err)
			}
			return Token{kind: String, text: string(dec)}, nil
		case ch == '\\':
			t.buf.WriteRune(ch)
			if err := t.scanEscape(); err != nil {
				return Token{}, err
			}
		case ch < ' ':
			return Token{}, t.fail(MalformedLiteral, nil, "unescaped control %q in string", ch)
		case ch == utf8.RuneError && t.src.last == 1:
			return Token{}, t.fail(MalformedLiteral, nil, "invalid UTF-8 in string")
		default:
			t.buf.WriteRune(ch)
		}
	}
}

// scanEscape consumes the remainder of an escape sequence whose leading "\"
// has already been read.
func (t *tokenizer) scanEscape() error {
	ch, ok := t.src.Next()
	if !ok {
		return t.failEOF("incomplete escape sequence")
	}
	switch ch {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		t.buf.WriteRune(ch)
	case 'u':
		t.buf.WriteRune(ch)
		for range 4 {
			c, ok := t.src.Next()
			if !ok {
				return t.failEOF("incomplete Unicode escape")
			} else if !isHexDigit(c) {
				return t.fail(MalformedLiteral, nil, "invalid Unicode escape: not a hex digit: %q", c)
			}
			t.buf.WriteRune(c)
		}
	default:
		return t.fail(MalformedLiteral, nil, "invalid %q after escape", ch)
	}
	return nil
}

func (t *tokenizer) scanNumber() (Token, error) {
	if ch, _ := t.src.Peek(); ch == '-' {
		t.take()
	}

	// Integer part: a single zero, or a run of digits not starting with zero.
	if ch, ok := t.src.Peek(); !ok || !isDigit(ch) {
		return Token{}, t.fail(MalformedLiteral, nil, "want digit in %q", t.buf.String())
	}
	if t.take() == '0' {
		if ch, ok := t.src.Peek(); ok && isDigit(ch) {
			return Token{}, t.fail(MalformedLiteral, nil, "extra leading zeroes")
		}
	} else {
		t.takeWhile(isDigit)
	}

	// Optional fraction.
	if ch, ok := t.src.Peek(); ok && ch == '.' {
		t.take()
		if t.takeWhile(isDigit) == 0 {
			return Token{}, t.fail(MalformedLiteral, nil, "no digits after decimal point")
		}
	}

	// Optional exponent.
	if ch, ok := t.src.Peek(); ok && (ch == 'e' || ch == 'E') {
		t.take()
		if ch, ok := t.src.Peek(); ok && (ch == '+' || ch == '-') {
			t.take()
		}
		if t.takeWhile(isDigit) == 0 {
			return Token{}, t.fail(MalformedLiteral, nil, "missing exponent digits")
		}
	}

	text := t.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, t.fail(MalformedLiteral, err, "number %s out of range", text)
	}
	return Token{kind: Number, text: text, num: v}, nil
}

var keywords = [...]struct {
	text mem.RO
	kind Kind
}{
	{mem.S("true"), True},
	{mem.S("false"), False},
	{mem.S("null"), Null},
}

func (t *tokenizer) scanName() (Token, error) {
	t.takeWhile(isLetter)
	got := mem.B(t.buf.Bytes())
	for _, kw := range keywords {
		if got.Equal(kw.text) {
			return Token{kind: kw.kind}, nil
		}
	}
	return Token{}, t.fail(UnknownToken, nil, "unknown constant %q", got.StringCopy())
}

// take consumes the next rune into the token buffer and returns it.
func (t *tokenizer) take() rune {
	ch, _ := t.src.Next()
	t.buf.WriteRune(ch)
	return ch
}

// takeWhile consumes runes matching f into the token buffer, and reports the
// number of runes consumed.
func (t *tokenizer) takeWhile(f func(rune) bool) int {
	var nr int
	for {
		ch, ok := t.src.Peek()
		if !ok || !f(ch) {
			return nr
		}
		t.take()
		nr++
	}
}

func (t *tokenizer) fail(kind ErrorKind, err error, msg string, args ...any) error {
	return &SyntaxError{
		Kind:     kind,
		Location: t.first,
		Offset:   t.pos,
		Token:    t.buf.String(), // the partial text read so far
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	}
}

// failEOF reports an error for input that ended inside a literal.  A read
// failure from the source takes precedence over the literal error.
func (t *tokenizer) failEOF(msg string) error {
	if err := t.src.Err(); err != nil {
		return t.fail(UnexpectedToken, err, "read failed: %v", err)
	}
	return t.fail(MalformedLiteral, nil, "%s at end of input", msg)
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isLetter(ch rune) bool   { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}

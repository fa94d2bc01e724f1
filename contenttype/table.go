// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package contenttype maps file name extensions to MIME content types, using
// a table loaded from a JSON document of the form
//
//	{"html": "text/html", "json": "application/json", ...}
//
// Every value of the document must be a string.
package contenttype

import (
	"os"
	"path"
	"slices"
	"strings"

	"github.com/creachadair/jsonv"
	"github.com/creachadair/jsonv/ast"
	"github.com/pkg/errors"
)

// A Table is a read-only mapping from extensions to content types.
// A Table is safe for concurrent use by multiple goroutines.
type Table struct {
	types map[string]string
}

// New constructs a table from a map of extensions to content types.
// Leading dots in the extensions are ignored.
func New(types map[string]string) *Table {
	t := &Table{types: make(map[string]string, len(types))}
	for ext, ctype := range types {
		t.types[normalize(ext)] = ctype
	}
	return t
}

// Parse constructs a table from the JSON text of data. The text must be an
// object whose members all have string values.
func Parse(data []byte) (*Table, error) {
	v, err := ast.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse content types")
	}
	obj, err := ast.AsObject(v)
	if err != nil {
		return nil, errors.Wrap(err, "content type table")
	}
	t := &Table{types: make(map[string]string, obj.Len())}
	for ext, val := range obj.All() {
		ctype, err := ast.AsString(val)
		if err != nil {
			return nil, errors.Wrapf(err, "content type for %q", ext)
		}
		t.types[normalize(ext)] = ctype
	}
	return t, nil
}

// Load reads and parses the table stored in the named file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load content types")
	}
	t, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %q", path)
	}
	return t, nil
}

// Len reports the number of extensions in t.
func (t *Table) Len() int { return len(t.types) }

// Extensions returns the extensions defined by t in lexicographic order.
func (t *Table) Extensions() []string {
	exts := make([]string, 0, len(t.types))
	for ext := range t.types {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Get returns the content type for ext, and reports whether it was found.
// If ext is not in the table, Get returns "", false.
func (t *Table) Get(ext string) (string, bool) {
	ctype, ok := t.types[normalize(ext)]
	return ctype, ok
}

// Lookup returns the content type for ext. If ext is not in the table, it
// reports a *jsonv.AccessError with kind KeyNotFound.
func (t *Table) Lookup(ext string) (string, error) {
	ctype, ok := t.Get(ext)
	if !ok {
		return "", &jsonv.AccessError{Kind: jsonv.KeyNotFound, Key: normalize(ext)}
	}
	return ctype, nil
}

// ForPath returns the content type for the extension of p, as reported by
// ExtensionOf.
func (t *Table) ForPath(p string) (string, bool) { return t.Get(ExtensionOf(p)) }

// ExtensionOf reports the extension that selects the content type for a
// request path p. A path ending in "/" names an index page and has extension
// "html". A final path element with no "." has extension "*". Otherwise the
// extension is the text after the last "." of the final element.
func ExtensionOf(p string) string {
	if p == "" || strings.HasSuffix(p, "/") {
		return "html"
	}
	base := path.Base(p)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return "*"
	}
	return base[i+1:]
}

func normalize(ext string) string { return strings.TrimLeft(ext, ".") }

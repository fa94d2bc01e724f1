// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"math"
	"testing"

	"github.com/creachadair/jsonv"
	"github.com/creachadair/jsonv/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestObjectAccess(t *testing.T) {
	obj, err := ast.AsObject(ast.MustParse(`{"s":"x","n":2.5,"b":false,"z":null,"a":[1],"o":{}}`))
	if err != nil {
		t.Fatalf("AsObject: %v", err)
	}
	if obj.Len() != 6 {
		t.Errorf("Len: got %d, want 6", obj.Len())
	}

	// Missing keys report KeyNotFound from Get, and an explicit miss from Lookup.
	if v, err := obj.Get("nonesuch"); !errors.Is(err, jsonv.KeyNotFound) {
		t.Errorf("Get(nonesuch): got %v, %v; want %v", v, err, jsonv.KeyNotFound)
	} else if got := err.Error(); got != `key "nonesuch" not found` {
		t.Errorf("Get(nonesuch): error %q", got)
	}
	if v, ok := obj.Lookup("nonesuch"); ok || v != nil {
		t.Errorf("Lookup(nonesuch): got %v, %v; want nil, false", v, ok)
	}
	if !obj.Has("z") || obj.Has("Z") {
		t.Error("Has: keys should match exactly")
	}
	if v, ok := obj.Lookup("z"); !ok || !ast.IsNull(v) {
		t.Errorf("Lookup(z): got %v, %v; want null, true", v, ok)
	}

	// Typed getters check the type of the member.
	if s, err := obj.GetString("s"); err != nil || s != "x" {
		t.Errorf("GetString(s): got %q, %v", s, err)
	}
	if _, err := obj.GetString("n"); !errors.Is(err, jsonv.TypeMismatch) {
		t.Errorf("GetString(n): got %v, want %v", err, jsonv.TypeMismatch)
	} else if got := err.Error(); got != "value is number, not string" {
		t.Errorf("GetString(n): error %q", got)
	}
	if _, err := obj.GetObject("a"); !errors.Is(err, jsonv.TypeMismatch) {
		t.Errorf("GetObject(a): got %v, want %v", err, jsonv.TypeMismatch)
	}
	if _, err := obj.GetArray("o"); !errors.Is(err, jsonv.TypeMismatch) {
		t.Errorf("GetArray(o): got %v, want %v", err, jsonv.TypeMismatch)
	}
	if _, err := obj.GetBool("missing"); !errors.Is(err, jsonv.KeyNotFound) {
		t.Errorf("GetBool(missing): got %v, want %v", err, jsonv.KeyNotFound)
	}
	if b, err := obj.GetBool("b"); err != nil || b {
		t.Errorf("GetBool(b): got %v, %v", b, err)
	}

	// A failed access does not disturb the rest of the tree.
	if n, err := obj.GetNumber("n"); err != nil || n != 2.5 {
		t.Errorf("GetNumber(n): got %v, %v", n, err)
	}

	var keys []string
	for key, v := range obj.All() {
		keys = append(keys, key+"="+ast.KindOf(v).String())
	}
	if diff := cmp.Diff([]string{
		"s=string", "n=number", "b=bool", "z=null", "a=array", "o=object",
	}, keys); diff != "" {
		t.Errorf("All: (-want, +got)\n%s", diff)
	}

	// Members returns a copy that does not alias the object.
	ms := obj.Members()
	ms[0].Value = ast.String("changed")
	if s, _ := obj.GetString("s"); s != "x" {
		t.Errorf("Members aliases the object: s = %q", s)
	}
}

func TestArrayAccess(t *testing.T) {
	arr, err := ast.AsArray(ast.MustParse(`["a", 1, true, {"k": "v"}, [], null]`))
	if err != nil {
		t.Fatalf("AsArray: %v", err)
	}
	if arr.Len() != 6 {
		t.Fatalf("Len: got %d, want 6", arr.Len())
	}
	for _, i := range []int{-1, 6, 100} {
		v, err := arr.Index(i)
		if !errors.Is(err, jsonv.IndexOutOfRange) {
			t.Errorf("Index(%d): got %v, %v; want %v", i, v, err, jsonv.IndexOutOfRange)
		}
	}
	if _, err := arr.Index(6); err.Error() != "index 6 out of range (n=6)" {
		t.Errorf("Index(6): error %q", err)
	}
	if s, err := arr.StringAt(0); err != nil || s != "a" {
		t.Errorf("StringAt(0): got %q, %v", s, err)
	}
	if n, err := arr.NumberAt(1); err != nil || n != 1 {
		t.Errorf("NumberAt(1): got %v, %v", n, err)
	}
	if b, err := arr.BoolAt(2); err != nil || !b {
		t.Errorf("BoolAt(2): got %v, %v", b, err)
	}
	if o, err := arr.ObjectAt(3); err != nil {
		t.Errorf("ObjectAt(3): %v", err)
	} else if s, _ := o.GetString("k"); s != "v" {
		t.Errorf("ObjectAt(3): k = %q, want v", s)
	}
	if a, err := arr.ArrayAt(4); err != nil || a.Len() != 0 {
		t.Errorf("ArrayAt(4): got %v, %v", a, err)
	}
	if _, err := arr.BoolAt(0); !errors.Is(err, jsonv.TypeMismatch) {
		t.Errorf("BoolAt(0): got %v, want %v", err, jsonv.TypeMismatch)
	}
	if _, err := arr.StringAt(-1); !errors.Is(err, jsonv.IndexOutOfRange) {
		t.Errorf("StringAt(-1): got %v, want %v", err, jsonv.IndexOutOfRange)
	}

	// Values returns a copy that does not alias the array.
	vs := arr.Values()
	if len(vs) != arr.Len() {
		t.Fatalf("Values: got %d elements, want %d", len(vs), arr.Len())
	}
	vs[0] = ast.Int(99)
	if s, err := arr.StringAt(0); err != nil || s != "a" {
		t.Errorf("Values aliases the array: got %q, %v", s, err)
	}

	var got []ast.Kind
	for i, v := range arr.All() {
		if i != len(got) {
			t.Errorf("All: index %d out of sequence", i)
		}
		got = append(got, v.Kind())
	}
	want := []ast.Kind{ast.StringKind, ast.NumberKind, ast.BoolKind, ast.ObjectKind, ast.ArrayKind, ast.NullKind}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All: (-want, +got)\n%s", diff)
	}
}

func TestAsMismatch(t *testing.T) {
	tests := []struct {
		name string
		as   func(ast.Value) error
		v    ast.Value
	}{
		{"ObjectOfArray", func(v ast.Value) error { _, err := ast.AsObject(v); return err }, ast.NewArray()},
		{"ArrayOfObject", func(v ast.Value) error { _, err := ast.AsArray(v); return err }, ast.NewObject()},
		{"StringOfNull", func(v ast.Value) error { _, err := ast.AsString(v); return err }, ast.Null},
		{"NumberOfString", func(v ast.Value) error { _, err := ast.AsNumber(v); return err }, ast.String("1")},
		{"BoolOfNumber", func(v ast.Value) error { _, err := ast.AsBool(v); return err }, ast.Int(0)},
		{"ObjectOfNil", func(v ast.Value) error { _, err := ast.AsObject(v); return err }, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.as(tc.v)
			var aerr *jsonv.AccessError
			if !errors.As(err, &aerr) {
				t.Fatalf("Got %v, want *AccessError", err)
			}
			if aerr.Kind != jsonv.TypeMismatch {
				t.Errorf("Kind: got %v, want %v", aerr.Kind, jsonv.TypeMismatch)
			}
			if jsonv.KindOf(err) != jsonv.TypeMismatch {
				t.Errorf("KindOf: got %v, want %v", jsonv.KindOf(err), jsonv.TypeMismatch)
			}
			t.Logf("Error: %v", err)
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b ast.Value
		want bool
	}{
		{ast.Null, ast.Null, true},
		{nil, nil, true},
		{ast.Null, nil, false},
		{ast.Int(1), ast.Number(1.0), true},
		{ast.Int(1), ast.String("1"), false},
		{ast.Bool(false), ast.Null, false},
		{ast.String("a"), ast.String("a"), true},
		{ast.NewArray(ast.Int(1), ast.Int(2)), ast.NewArray(ast.Int(1), ast.Int(2)), true},
		{ast.NewArray(ast.Int(1), ast.Int(2)), ast.NewArray(ast.Int(2), ast.Int(1)), false},
		{ast.NewArray(ast.Int(1)), ast.NewArray(ast.Int(1), ast.Int(1)), false},
		{ast.NewObject(ast.Field("a", ast.Null)), ast.NewObject(ast.Field("a", ast.Null)), true},
		{ast.NewObject(ast.Field("a", ast.Null)), ast.NewObject(ast.Field("b", ast.Null)), false},
		{
			ast.NewObject(ast.Field("a", ast.Null), ast.Field("b", ast.Null)),
			ast.NewObject(ast.Field("b", ast.Null), ast.Field("a", ast.Null)),
			false, // member order matters
		},
		{ast.NewObject(), ast.NewArray(), false},
	}
	for _, test := range tests {
		if got := ast.Equal(test.a, test.b); got != test.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		n     ast.Number
		isInt bool
	}{
		{0, true},
		{-25, true},
		{1e15, true},
		{0.5, false},
		{1e300, false},
		{ast.Number(math.MaxInt64), false},
	}
	for _, test := range tests {
		if got := test.n.IsInt(); got != test.isInt {
			t.Errorf("IsInt(%v): got %v, want %v", test.n, got, test.isInt)
		}
	}
	if z := ast.Int(-7).Int64(); z != -7 {
		t.Errorf("Int64: got %d, want -7", z)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Value
	}{
		{nil, ast.Null},
		{"x", ast.String("x")},
		{true, ast.Bool(true)},
		{17, ast.Int(17)},
		{int64(-3), ast.Int(-3)},
		{2.5, ast.Number(2.5)},
		{ast.NewArray(), ast.NewArray()},
	}
	for _, test := range tests {
		if got := ast.ToValue(test.input); !ast.Equal(got, test.want) {
			t.Errorf("ToValue(%v): got %v, want %v", test.input, got, test.want)
		}
	}
	mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
	mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
	mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
}

func TestNilIsNull(t *testing.T) {
	obj := ast.NewObject(ast.Field("a", nil), ast.Member{Key: "b"})
	arr := ast.NewArray(nil, ast.Int(1), nil)

	if got, want := ast.Render(obj), `{"a":null,"b":null}`; got != want {
		t.Errorf("Render object: got %s, want %s", got, want)
	}
	if got, want := ast.Render(arr), `[null,1,null]`; got != want {
		t.Errorf("Render array: got %s, want %s", got, want)
	}
	if v, _ := obj.Lookup("a"); !ast.IsNull(v) {
		t.Errorf("Lookup(a): got %v, want null", v)
	}
	if v, _ := arr.Index(2); !ast.IsNull(v) {
		t.Errorf("Index(2): got %v, want null", v)
	}
	if !ast.Equal(arr, ast.MustParse(`[null, 1, null]`)) {
		t.Errorf("Equal: %s does not match its parsed form", ast.Render(arr))
	}
}

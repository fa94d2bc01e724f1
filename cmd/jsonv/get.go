// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/creachadair/jsonv/ast"
	"github.com/creachadair/jsonv/ast/cursor"
)

// getCommand prints the value at a path in a JSON document.
type getCommand struct {
	out  io.Writer
	file *string
	path *[]string
	raw  *bool
}

func (cmd *getCommand) run(*kingpin.ParseContext) error {
	data, err := readInput(*cmd.file)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	root, err := ast.ParseBytes(data)
	if err != nil {
		return errors.Wrapf(err, "parse %s", *cmd.file)
	}
	c := cursor.New(root).Down(parsePath(*cmd.path)...)
	if err := c.Err(); err != nil {
		return errors.Wrapf(err, "at depth %d", len(c.Path())-1)
	}
	if s, ok := c.Value().(ast.String); ok && *cmd.raw {
		_, err = fmt.Fprintln(cmd.out, string(s))
	} else {
		_, err = fmt.Fprintln(cmd.out, c.Value().JSON())
	}
	return err
}

// parsePath converts command-line path elements to cursor path elements.
// Each element is interpreted against the value it is applied to: on an
// object it is a key, and on an array it is an integer offset, where
// negative offsets count backward from the end.
func parsePath(args []string) []any {
	path := make([]any, len(args))
	for i, arg := range args {
		path[i] = pathStep(arg)
	}
	return path
}

func pathStep(arg string) func(ast.Value) (ast.Value, error) {
	return func(v ast.Value) (ast.Value, error) {
		arr, ok := v.(ast.Array)
		if !ok {
			obj, err := ast.AsObject(v)
			if err != nil {
				return nil, err
			}
			return obj.Get(arg)
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Errorf("invalid array offset %q", arg)
		}
		if n < 0 {
			n += arr.Len()
		}
		return arr.Index(n)
	}
}

func addGetCommand(app *kingpin.Application) {
	cmd := &getCommand{out: os.Stdout}
	c := app.Command("get", "Print the value at a path in a JSON file.").Action(cmd.run)
	cmd.raw = c.Flag("raw", "Print string values without quotation.").Short('r').Bool()
	cmd.file = c.Arg("file", "The file to read (- for stdin).").Required().String()
	cmd.path = c.Arg("path", "Object keys, or offsets into arrays, to traverse.").Strings()
}

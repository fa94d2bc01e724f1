// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/creachadair/jsonv/ast"
)

// fmtCommand parses each input and writes it back in canonical form.
type fmtCommand struct {
	out     io.Writer
	files   *[]string
	indent  *int
	compact *bool
}

func (cmd *fmtCommand) run(*kingpin.ParseContext) error {
	files := *cmd.files
	if len(files) == 0 {
		files = []string{"-"}
	}
	f := ast.Formatter{Indent: "\t"}
	if *cmd.indent > 0 {
		f.Indent = strings.Repeat(" ", *cmd.indent)
	}
	for _, name := range files {
		data, err := readInput(name)
		if err != nil {
			return errors.Wrap(err, "read input")
		}
		v, err := ast.ParseBytes(data)
		if err != nil {
			return errors.Wrapf(err, "parse %s", name)
		}
		level.Debug(logger).Log("msg", "parsed input", "file", name, "kind", v.Kind())

		if *cmd.compact {
			_, err = fmt.Fprintln(cmd.out, ast.Render(v))
		} else {
			err = f.Format(cmd.out, v)
		}
		if err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return nil
}

func addFmtCommand(app *kingpin.Application) {
	cmd := &fmtCommand{out: os.Stdout}
	c := app.Command("fmt", "Parse JSON files and print them in canonical form.").Action(cmd.run)
	cmd.indent = c.Flag("indent", "Spaces per indentation level (0 or less for tabs).").Default("2").Int()
	cmd.compact = c.Flag("compact", "Print compact output with no whitespace.").Bool()
	cmd.files = c.Arg("file", "The files to format (default stdin).").ExistingFiles()
}

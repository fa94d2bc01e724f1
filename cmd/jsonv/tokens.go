// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/creachadair/jsonv"
)

// tokensCommand prints the token stream of a JSON document.
type tokensCommand struct {
	out  io.Writer
	file *string
}

func (cmd *tokensCommand) run(*kingpin.ParseContext) error {
	data, err := readInput(*cmd.file)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	ts, err := jsonv.TokenizeString(string(data))
	if err != nil {
		return errors.Wrapf(err, "tokenize %s", *cmd.file)
	}
	bold := color.New(color.Bold)
	bold.Fprintf(cmd.out, "%-16s %s\n", "LOCATION", "TOKEN")
	for loc, tok := range ts.All() {
		fmt.Fprintf(cmd.out, "%-16s %v\n", loc, tok)
	}
	bold.Fprintln(cmd.out, "Summary:")
	_, err = fmt.Fprintf(cmd.out, "\t%d tokens, %s\n", ts.Len(), humanize.Bytes(uint64(len(data))))
	return err
}

func addTokensCommand(app *kingpin.Application) {
	cmd := &tokensCommand{out: os.Stdout}
	c := app.Command("tokens", "Print the tokens of a JSON file with their locations.").Action(cmd.run)
	cmd.file = c.Arg("file", "The file to read (- for stdin).").Default("-").String()
}

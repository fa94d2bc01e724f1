// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/creachadair/jsonv/contenttype"
)

// ctypeCommand looks up content types for extensions and request paths.
type ctypeCommand struct {
	out   io.Writer
	table *string
	keys  *[]string
}

// run prints one line per key. If any key has no content type, run reports
// an error after all keys are printed.
func (cmd *ctypeCommand) run(*kingpin.ParseContext) error {
	if err := contenttype.Init(*cmd.table, logger); err != nil {
		return err
	}
	var misses int
	for _, key := range *cmd.keys {
		ctype, ok := lookupType(contenttype.Default(), key)
		if !ok {
			misses++
			ctype = color.RedString("(none)")
		}
		fmt.Fprintf(cmd.out, "%s\t%s\n", key, ctype)
	}
	if misses > 0 {
		return errors.Errorf("no content type for %d of %d keys", misses, len(*cmd.keys))
	}
	return nil
}

// lookupType resolves key as a request path if it contains a "/", and as an
// extension otherwise.
func lookupType(t *contenttype.Table, key string) (string, bool) {
	if strings.Contains(key, "/") {
		return t.ForPath(key)
	}
	return t.Get(key)
}

func addCtypeCommand(app *kingpin.Application) {
	cmd := &ctypeCommand{out: os.Stdout}
	c := app.Command("ctype", "Look up content types by extension or request path.").Action(cmd.run)
	cmd.table = c.Flag("table", "JSON file mapping extensions to content types.").Required().ExistingFile()
	cmd.keys = c.Arg("key", "Extensions or request paths (containing /) to look up.").Required().Strings()
}

// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Program jsonv parses, formats, and inspects JSON documents.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func main() {
	app := kingpin.New("jsonv", "Parse, format, and inspect JSON documents.")
	verbose := app.Flag("verbose", "Enable debug logging.").Short('v').Bool()
	app.PreAction(func(*kingpin.ParseContext) error {
		lvl := level.AllowInfo()
		if *verbose {
			lvl = level.AllowDebug()
		}
		logger = level.NewFilter(logger, lvl)
		return nil
	})

	addFmtCommand(app)
	addGetCommand(app)
	addTokensCommand(app)
	addCtypeCommand(app)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		exitWithErr(err)
	}
}

// exitWithErr logs err and terminates the program.
func exitWithErr(err error) {
	level.Error(logger).Log("err", err)
	os.Exit(1)
}

// readInput returns the contents of the named file, or of stdin if name is
// "" or "-".
func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

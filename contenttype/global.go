// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package contenttype

import (
	"sync"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var global struct {
	once  sync.Once
	table atomic.Pointer[Table] // set once, after a successful load
	err   error
}

// Init loads the process-wide table from the named file. Only the first call
// has any effect; later calls report the result of the first. If logger is
// nil, nothing is logged.
//
// A program that depends on content types should treat an error from Init as
// fatal.
func Init(path string, logger log.Logger) error {
	global.once.Do(func() {
		if logger == nil {
			logger = log.NewNopLogger()
		}
		logger = log.With(logger, "component", "contenttype", "path", path)

		t, err := Load(path)
		if err != nil {
			level.Error(logger).Log("msg", "failed to load content types", "err", err)
			global.err = err
			return
		}
		level.Info(logger).Log("msg", "loaded content types", "extensions", t.Len())
		global.table.Store(t)
	})
	return global.err
}

// Default returns the table loaded by Init. It panics if Init has not yet
// completed successfully. Default may be called concurrently with Init.
func Default() *Table {
	t := global.table.Load()
	if t == nil {
		panic("contenttype: table is not initialized")
	}
	return t
}

// Get returns the content type for ext from the table loaded by Init.
func Get(ext string) (string, bool) { return Default().Get(ext) }

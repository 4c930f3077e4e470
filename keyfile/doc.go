/*
Package keyfile bulk-loads keys from text files into M-ary search trees.

Input files are expected to carry one key per line; blank lines are skipped.
Lines are converted to keys by a client-provided parser, so any key type can
be read. Convenience loaders for strings and integers are included.

Loading of large files is done asynchronously, with progress broadcast to
any number of subscribers. Clients that do not care about progress simply
call Wait and receive the finished tree's key count. Opening of the file is
always done synchronously.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package keyfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mtree'
func tracer() tracing.Trace {
	return tracing.Select("mtree")
}

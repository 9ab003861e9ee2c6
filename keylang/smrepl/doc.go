/*
Package smrepl/main provides an interactive command line tool (SM.REPL)
for compound-key maps. Users enter keylang commands; SM.REPL evaluates
them against a session map and prints the result. It serves as a sandbox
for exploring set-keyed maps, e.g. for checking how key normalization,
set-equality matching and update-in-place behave, before wiring the
containers into a program.

Please refer to packages "setmap" and "keylang".


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'setmap.lang'
func tracer() tracing.Trace {
	return tracing.Select("setmap.lang")
}

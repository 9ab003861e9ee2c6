/*
Package keylang provides a small textual command language for compound-key
maps. It exists for interactive exploration and for script tests: key sets
are written in braces, commands operate on a string-to-string map.

	put {a, b} = 1     // store "1" under the key set {a,b}
	get {b, a}         // -> 1, element order never matters
	del {a, b}         // -> true
	size               // -> 0

The package has three layers: a scanner built with lexmachine, a
recursive-descent command parser, and a Session which evaluates parsed
commands against a setmap.Map and renders one transcript line per command.
The interactive shell in subpackage smrepl and the script tests share the
Session type, so both see identical behavior.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package keylang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'setmap.lang'.
func tracer() tracing.Trace {
	return tracing.Select("setmap.lang")
}

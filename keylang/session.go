package keylang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/setmap"
)

// Session owns a compound-key map and evaluates command lines against it.
// The interactive shell and script tests share this type, so transcripts are
// identical in both.
type Session struct {
	m *setmap.Map[string, string]
}

// NewSession creates a session with an empty map.
func NewSession() *Session {
	return &Session{
		m: setmap.New[string, string](),
	}
}

// Map exposes the session's underlying map, e.g. for rendering a dump.
func (s *Session) Map() *setmap.Map[string, string] {
	return s.m
}

// Eval evaluates one command line and returns a printable transcript line.
// The boolean result reports whether the session should end ('quit').
// Malformed input produces an error and leaves the map untouched.
func (s *Session) Eval(line string) (string, bool, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return "", false, err
	}
	return s.execute(cmd)
}

func (s *Session) execute(cmd *Command) (string, bool, error) {
	tracer().Debugf("evaluating '%s' command", cmd.Op)
	switch cmd.Op {
	case "put":
		s.m.Put(cmd.Key, cmd.Value)
		return fmt.Sprintf("%v = %s", cmd.Key, cmd.Value), false, nil
	case "get":
		v, ok := s.m.Get(cmd.Key)
		if !ok {
			return fmt.Sprintf("no entry for %v", cmd.Key), false, nil
		}
		return v, false, nil
	case "has":
		return strconv.FormatBool(s.m.Has(cmd.Key)), false, nil
	case "del":
		return strconv.FormatBool(s.m.Delete(cmd.Key)), false, nil
	case "clear":
		s.m.Clear()
		return "cleared", false, nil
	case "size":
		return strconv.Itoa(s.m.Size()), false, nil
	case "keys":
		var keys []string
		for ks := range s.m.Keys() {
			keys = append(keys, ks.String())
		}
		return strings.Join(keys, " "), false, nil
	case "values":
		var values []string
		for v := range s.m.Values() {
			values = append(values, v)
		}
		return strings.Join(values, " "), false, nil
	case "entries":
		return s.m.String(), false, nil
	case "help":
		return helpText, false, nil
	case "quit":
		return "bye", true, nil
	}
	return "", false, unknown(cmd.Op)
}

// unknown rejects command words the parser passed through but the evaluator
// has no behavior for. The config flag turns the rejection into a loud one,
// e.g. while replaying init files or extending the command vocabulary.
func unknown(op string) error {
	tracer().Errorf("unknown command: %s", op)
	if gconf.GetBool("keylang-strict") {
		panic(`keylang session cannot evaluate command '` + op + `'.

Configuration flag keylang-strict is set to true. It is aimed at finding
mismatches between the scanner vocabulary and the session evaluator while
extending the command language. If this is a production environment and you
did not expect this to panic, please unset keylang-strict to its default
(false).
`)
	}
	return fmt.Errorf("unknown command: %s", op)
}

const helpText = `commands:
  put {a, b} = v    store v under the key set
  get {a, b}        look up the stored value
  has {a, b}        test for an entry
  del {a, b}        remove an entry
  clear             remove all entries
  size              number of entries
  keys              all key sets, in insertion order
  values            all values, in insertion order
  entries           all entries, in insertion order
  help              this text
  quit              end the session`

package setmap

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"
)

// Traversal over a Map comes in three flavors: lazy sequences (Keys, Values,
// Entries) for range loops, and callback walks (Each, ForEach) for clients
// that prefer to hand in a visitor. All of them run in entry insertion order.
//
// The sequences are restartable: every range over one of them starts a fresh
// traversal; nothing is shared between two loops over the same sequence.
// Mutating the map while a traversal is in progress leaves the traversal
// undefined, as it does for Go's native maps.

// Keys iterates over the stored canonical key sets, in insertion order.
// The yielded sets are the stored originals, not copies.
func (m *Map[K, V]) Keys() iter.Seq[*KeySet[K]] {
	return func(yield func(*KeySet[K]) bool) {
		it := m.store.Iterator()
		for it.Next() {
			if !yield(it.Key().(*KeySet[K])) {
				return
			}
		}
	}
}

// Values iterates over the stored values, in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := m.store.Iterator()
		for it.Next() {
			value, _ := it.Value().(V)
			if !yield(value) {
				return
			}
		}
	}
}

// Entries iterates over (key set, value) pairs, in insertion order. Entries
// is the map's natural iteration:
//
//    for ks, v := range m.Entries() { … }
//
func (m *Map[K, V]) Entries() iter.Seq2[*KeySet[K], V] {
	return func(yield func(*KeySet[K], V) bool) {
		it := m.store.Iterator()
		for it.Next() {
			value, _ := it.Value().(V)
			if !yield(it.Key().(*KeySet[K]), value) {
				return
			}
		}
	}
}

// Each calls a visitor once per entry, in insertion order.
func (m *Map[K, V]) Each(visit func(key *KeySet[K], value V)) {
	for ks, v := range m.Entries() {
		visit(ks, v)
	}
}

// ForEach calls a visitor once per entry, in insertion order, passing the
// value, the entry's canonical key set, and the map itself. The third
// argument lets a detached visitor (a standalone function or a bound method
// value) reach back into the map it is walking.
func (m *Map[K, V]) ForEach(visit func(value V, key *KeySet[K], m *Map[K, V])) {
	for ks, v := range m.Entries() {
		visit(v, ks, m)
	}
}

// String renders the map's entries in insertion order, e.g.
// "[{a,b} = 1, {c} = 2]".
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("[")
	first := true
	for ks, v := range m.Entries() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(ks.String())
		fmt.Fprintf(&b, " = %v", v)
	}
	b.WriteString("]")
	return b.String()
}

// MarshalJSON encodes the map as a JSON array of [elements, value] pairs, in
// insertion order. Compound keys cannot serve as JSON object properties, so
// the pair-list form stands in for the usual object encoding.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, 0, m.Size())
	for ks, v := range m.Entries() {
		pairs = append(pairs, [2]any{ks, v})
	}
	return json.Marshal(pairs)
}

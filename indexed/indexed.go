/*
Package indexed provides a compound-key map with digest-indexed lookup.

The root setmap package finds entries by scanning the stored keys linearly,
which is fine for small maps and requires nothing beyond Go equality on the
element type. This package trades that simplicity for sub-linear lookup:
every key set is fingerprinted by hashing its elements in comparator order,
and entries live in buckets addressed by that fingerprint. A lookup then
computes one digest and inspects a (normally single-entry) bucket instead of
walking the whole map.

Construct with an element comparator, or with NewNatural for element types
carrying a natural order:

   m := indexed.NewNatural[string, int]()
   m.Put(setmap.Key("a", "b"), 1)
   v, ok := m.Get(setmap.Key("b", "a"))   // v == 1

The comparator must be consistent with Go equality on the element type, i.e.
return 0 exactly for elements that are ==. Matching stays correct even if two
different key sets ever collide on a digest: bucket entries are verified by
set equality before they count as a hit.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package indexed

import (
	"encoding/json"
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/setmap"
	"golang.org/x/exp/constraints"
)

// Map associates values with compound keys, just like setmap.Map, but keeps
// a content digest for every stored key set. Entries equal under set equality
// produce equal digests, so a lookup touches only the entries in one bucket.
//
// The zero Map is not ready for use; construct with New or NewNatural.
type Map[K comparable, V any] struct {
	cmp     utils.Comparator          // element order, consistent with ==
	buckets map[string][]*entry[K, V] // digest -> colliding entries
	order   *linkedhashset.Set        // of *entry, in insertion order
}

// A bucket slot.
type entry[K comparable, V any] struct {
	key   *setmap.KeySet[K]
	value V
}

// New creates a Map whose key elements are ordered by cmp. Initial entries
// are applied in order, i.e. a later entry with an equivalent key overwrites
// an earlier one.
func New[K comparable, V any](cmp utils.Comparator, initial ...setmap.Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		cmp:     cmp,
		buckets: make(map[string][]*entry[K, V]),
		order:   linkedhashset.New(),
	}
	for _, e := range initial {
		m.Put(e.Key, e.Value)
	}
	return m
}

// NewNatural creates a Map for element types with a natural order, sparing
// clients the comparator boilerplate.
func NewNatural[K constraints.Ordered, V any](initial ...setmap.Entry[K, V]) *Map[K, V] {
	return New[K, V](func(a, b interface{}) int {
		x, y := a.(K), b.(K)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}, initial...)
}

// --- Key digests -----------------------------------------------------------

// The canonical content of a key set: its elements in comparator order.
// Sorting removes the insertion order from the digest, so that {a,b} and
// {b,a} fingerprint identically.
type fingerprint[K comparable] struct {
	Elements []K
}

func (m *Map[K, V]) digestOf(ks *setmap.KeySet[K]) string {
	elements := ks.Elements()
	sort.Slice(elements, func(i, j int) bool {
		return m.cmp(elements[i], elements[j]) < 0
	})
	return fmt.Sprintf("%x", structhash.Md5(fingerprint[K]{Elements: elements}, 1))
}

func (m *Map[K, V]) normalize(key *setmap.KeySet[K]) *setmap.KeySet[K] {
	if key == nil {
		panic("indexed: nil KeySet used as compound key")
	}
	return key
}

// lookup returns the entry stored under a key equivalent to ks, or nil.
// The digest is returned either way, so callers insert without rehashing.
func (m *Map[K, V]) lookup(ks *setmap.KeySet[K]) (*entry[K, V], string) {
	d := m.digestOf(ks)
	for _, e := range m.buckets[d] {
		if e.key.Equals(ks) {
			return e, d
		}
	}
	return nil, d
}

// --- Map operations --------------------------------------------------------

// Put associates value with key. If an entry with an equivalent key exists,
// its value is replaced in place: the stored key object and the entry's
// position in insertion order do not change. Put returns the map, so calls
// may be chained.
func (m *Map[K, V]) Put(key *setmap.KeySet[K], value V) *Map[K, V] {
	ks := m.normalize(key)
	if e, d := m.lookup(ks); e != nil {
		e.value = value
	} else {
		e = &entry[K, V]{key: ks, value: value}
		m.buckets[d] = append(m.buckets[d], e)
		m.order.Add(e)
	}
	return m
}

// Get returns the value stored under a key equivalent to the given one.
// The second return value tells absence apart from a stored zero value.
func (m *Map[K, V]) Get(key *setmap.KeySet[K]) (V, bool) {
	e, _ := m.lookup(m.normalize(key))
	if e == nil {
		var none V
		return none, false
	}
	return e.value, true
}

// Has reports whether an entry with an equivalent key exists.
func (m *Map[K, V]) Has(key *setmap.KeySet[K]) bool {
	e, _ := m.lookup(m.normalize(key))
	return e != nil
}

// Delete removes the entry with an equivalent key, reporting whether one
// was present.
func (m *Map[K, V]) Delete(key *setmap.KeySet[K]) bool {
	e, d := m.lookup(m.normalize(key))
	if e == nil {
		return false
	}
	bucket := m.buckets[d]
	for i, slot := range bucket {
		if slot == e {
			m.buckets[d] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(m.buckets[d]) == 0 {
		delete(m.buckets, d)
	}
	m.order.Remove(e)
	return true
}

// Clear removes all entries. The map stays usable.
func (m *Map[K, V]) Clear() {
	m.buckets = make(map[string][]*entry[K, V])
	m.order.Clear()
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	return m.order.Size()
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.order.Empty()
}

// --- Traversal -------------------------------------------------------------

// Keys iterates over the stored key sets in insertion order. Like with
// setmap.Map, the yielded sets are the stored originals.
func (m *Map[K, V]) Keys() iter.Seq[*setmap.KeySet[K]] {
	return func(yield func(*setmap.KeySet[K]) bool) {
		it := m.order.Iterator()
		for it.Next() {
			if !yield(it.Value().(*entry[K, V]).key) {
				return
			}
		}
	}
}

// Values iterates over the stored values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := m.order.Iterator()
		for it.Next() {
			if !yield(it.Value().(*entry[K, V]).value) {
				return
			}
		}
	}
}

// Entries iterates over key/value pairs in insertion order.
func (m *Map[K, V]) Entries() iter.Seq2[*setmap.KeySet[K], V] {
	return func(yield func(*setmap.KeySet[K], V) bool) {
		it := m.order.Iterator()
		for it.Next() {
			e := it.Value().(*entry[K, V])
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Each calls visit for every entry, in insertion order.
func (m *Map[K, V]) Each(visit func(key *setmap.KeySet[K], value V)) {
	it := m.order.Iterator()
	for it.Next() {
		e := it.Value().(*entry[K, V])
		visit(e.key, e.value)
	}
}

// ForEach calls visit for every entry, in insertion order, handing the map
// itself to the callback as a third argument.
func (m *Map[K, V]) ForEach(visit func(value V, key *setmap.KeySet[K], m *Map[K, V])) {
	it := m.order.Iterator()
	for it.Next() {
		e := it.Value().(*entry[K, V])
		visit(e.value, e.key, m)
	}
}

func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("[")
	first := true
	it := m.order.Iterator()
	for it.Next() {
		e := it.Value().(*entry[K, V])
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v = %v", e.key, e.value)
	}
	b.WriteString("]")
	return b.String()
}

// MarshalJSON encodes the map as a JSON array of [elements, value] pairs, in
// insertion order, exactly like setmap.Map.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, 0, m.Size())
	for ks, v := range m.Entries() {
		pairs = append(pairs, [2]any{ks, v})
	}
	return json.Marshal(pairs)
}

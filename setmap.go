package setmap

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// --- Compound-key map ------------------------------------------------------

// Map is a mutable associative container keyed by KeySets. Matching is by set
// equivalence, not object identity: Put, Get, Has and Delete all treat two
// keys with the same elements as the same key. At most one entry per
// equivalence class is ever stored.
//
// Entries keep their insertion order; overwriting a value does not move its
// entry. Raw storage and iteration are delegated to an insertion-ordered
// hashmap keyed by the canonical KeySet object itself, which the Map owns
// exclusively. Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	store *linkedhashmap.Map // *KeySet[K] → V, insertion-ordered
}

// Entry is a (compound key, value) pair, used for construction-time loading.
type Entry[K comparable, V any] struct {
	Key   *KeySet[K]
	Value V
}

// E wraps a key and a value into an Entry. Mainly useful to let the compiler
// infer the type parameters:
//
//    m := setmap.New(setmap.E(setmap.Key(1, 2), "x"))
//
func E[K comparable, V any](key *KeySet[K], value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// New creates a Map, optionally pre-loaded with initial entries. Entries are
// loaded sequentially with Put semantics, so if two initial keys are
// equivalent, the later value wins (and the earlier key object is the one
// kept).
func New[K comparable, V any](initial ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{store: linkedhashmap.New()}
	for _, e := range initial {
		m.Put(e.Key, e.Value)
	}
	return m
}

// normalize guards the canonical-key boundary. Key(…) has already normalized
// element sequences; what remains to rule out is a nil set, which is a caller
// contract violation rather than a recoverable condition.
func (m *Map[K, V]) normalize(key *KeySet[K]) *KeySet[K] {
	if key == nil {
		panic("setmap: nil KeySet used as compound key")
	}
	return key
}

// findKey scans the stored keys for one equivalent to ks and returns the
// stored key object, or nil. Every keyed operation funnels through here.
func (m *Map[K, V]) findKey(ks *KeySet[K]) *KeySet[K] {
	it := m.store.Iterator()
	for it.Next() {
		stored := it.Key().(*KeySet[K])
		if stored.Equals(ks) {
			return stored
		}
	}
	return nil
}

// Put associates value with the given compound key. If an equivalent key is
// already present, its value is overwritten in place: the entry keeps its
// position in iteration order and its originally stored key object; the
// newly supplied key is discarded. Otherwise a new entry is appended.
//
// Put returns the map itself, so calls can be chained.
func (m *Map[K, V]) Put(key *KeySet[K], value V) *Map[K, V] {
	ks := m.normalize(key)
	if stored := m.findKey(ks); stored != nil {
		m.store.Put(stored, value)
		return m
	}
	m.store.Put(ks, value)
	return m
}

// Get returns the value stored under an equivalent key. The second result is
// false if no equivalent key is present; absence is not an error.
func (m *Map[K, V]) Get(key *KeySet[K]) (V, bool) {
	ks := m.normalize(key)
	if stored := m.findKey(ks); stored != nil {
		raw, _ := m.store.Get(stored)
		value, _ := raw.(V)
		return value, true
	}
	var none V
	return none, false
}

// Has tests whether an equivalent key is present.
func (m *Map[K, V]) Has(key *KeySet[K]) bool {
	return m.findKey(m.normalize(key)) != nil
}

// Delete removes the entry stored under an equivalent key, if any, and
// reports whether an entry was removed. Deleting an absent key is a no-op.
func (m *Map[K, V]) Delete(key *KeySet[K]) bool {
	ks := m.normalize(key)
	stored := m.findKey(ks)
	if stored == nil {
		return false
	}
	m.store.Remove(stored)
	return true
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.store.Clear()
}

// Size returns the number of entries. O(1).
func (m *Map[K, V]) Size() int {
	return m.store.Size()
}

// Empty is true for a map without entries.
func (m *Map[K, V]) Empty() bool {
	return m.store.Empty()
}

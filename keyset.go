package setmap

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"
)

// --- Canonical key sets ----------------------------------------------------

// KeySet is the canonical form of a compound key: an unordered, duplicate-free
// collection of elements. Two KeySets match if they have the same cardinality
// and identical membership, irrespective of the order elements were given in.
//
// KeySets are immutable after construction. A Map stores the KeySet object
// itself as its key, so a mutable set would let clients silently break the
// map's no-two-equivalent-keys invariant.
type KeySet[K comparable] struct {
	table map[K]struct{} // membership, O(1) average
	order []K            // element insertion order, for deterministic traversal
}

var exists = struct{}{}

// Key builds a canonical KeySet from a sequence of elements. Duplicates
// collapse; the empty sequence yields the (valid) empty key.
//
// Key is the normalization step for compound keys: an ordered sequence of
// elements becomes an unordered set here, and an already-canonical KeySet
// needs no further treatment and is passed to map operations as-is.
func Key[K comparable](elements ...K) *KeySet[K] {
	s := &KeySet[K]{table: make(map[K]struct{}, len(elements))}
	for _, el := range elements {
		if _, dup := s.table[el]; dup {
			continue
		}
		s.table[el] = exists
		s.order = append(s.order, el)
	}
	return s
}

// Contains tests membership of a single element.
func (s *KeySet[K]) Contains(element K) bool {
	if s == nil {
		return false
	}
	_, ok := s.table[element]
	return ok
}

// Size returns the number of elements.
func (s *KeySet[K]) Size() int {
	if s == nil {
		return 0
	}
	return len(s.table)
}

// Empty is true for the empty key set.
func (s *KeySet[K]) Empty() bool {
	return s.Size() == 0
}

// Equals reports set equivalence: equal cardinality and identical membership.
// Element order plays no role. Equals is symmetric, reflexive and transitive,
// and mutates neither operand; nil compares equal to nothing.
func (s *KeySet[K]) Equals(other *KeySet[K]) bool {
	if s == nil || other == nil {
		return false
	}
	if len(s.table) != len(other.table) {
		return false
	}
	for el := range s.table {
		if _, ok := other.table[el]; !ok {
			return false
		}
	}
	return true
}

// Elements returns a copy of the elements, in the order they were first given
// to Key. The copy is the caller's to keep; the set stays untouched.
func (s *KeySet[K]) Elements() []K {
	if s == nil {
		return []K{}
	}
	elements := make([]K, len(s.order))
	copy(elements, s.order)
	return elements
}

// All iterates over the elements, in the order they were first given to Key.
// Every range starts a fresh traversal.
func (s *KeySet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s == nil {
			return
		}
		for _, el := range s.order {
			if !yield(el) {
				return
			}
		}
	}
}

// String renders the set in brace notation, e.g. "{a,b}".
func (s *KeySet[K]) String() string {
	var b strings.Builder
	b.WriteString("{")
	if s != nil {
		for i, el := range s.order {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, "%v", el)
		}
	}
	b.WriteString("}")
	return b.String()
}

// MarshalJSON encodes the set as a JSON array of its elements.
func (s *KeySet[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Elements())
}

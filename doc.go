/*
Package setmap implements an associative container with compound keys.

A compound key is a key made up of several elements, treated as an unordered
set: the keys {a, b} and {b, a} select the same entry. Maps of this kind show
up whenever a lookup is governed by a combination of attributes and the
combination has no natural order, like edge labels between unordered node
pairs, or feature sets.

Two types make up the core:

■ KeySet is the canonical, duplicate-free form of a compound key. Clients
construct one with Key(…) from any sequence of elements; order and duplicates
in the input are immaterial.

■ Map associates KeySets with values. It behaves like an ordinary mutable map
(Put, Get, Has, Delete, Clear, Size), except that key matching is governed by
set equivalence instead of identity, and iteration runs in insertion order.

Example:

    m := setmap.New[string, int]()
    m.Put(setmap.Key("a", "b"), 1)
    v, ok := m.Get(setmap.Key("b", "a"))   // v == 1, ok == true

Lookups scan the stored keys linearly, which is the right trade-off for the
small key universes this container is intended for. For larger ones, package
indexed provides a digest-indexed variant with the same matching contract.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package setmap

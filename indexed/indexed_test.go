package indexed

import (
	"encoding/json"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/setmap"
)

func TestNaturalPutAndGet(t *testing.T) {
	m := NewNatural[string, int]()
	m.Put(setmap.Key("a", "b"), 1).Put(setmap.Key("c"), 2)
	if m.Size() != 2 {
		t.Errorf("Expected 2 entries, is %d", m.Size())
	}
	if v, ok := m.Get(setmap.Key("b", "a")); !ok || v != 1 {
		t.Errorf("Expected to find 1 under {a,b}, got %v (%v)", v, ok)
	}
	if !m.Has(setmap.Key("a", "b", "b")) {
		t.Error("Expected a duplicated representation to match {a,b}")
	}
	if m.Has(setmap.Key("a")) {
		t.Error("Expected {a} to be absent")
	}
}

type point struct{ X, Y int }

func pointComparator(a, b interface{}) int {
	p, q := a.(point), b.(point)
	if p.X != q.X {
		return utils.IntComparator(p.X, q.X)
	}
	return utils.IntComparator(p.Y, q.Y)
}

func TestComparatorConstruction(t *testing.T) {
	m := New[point, string](pointComparator,
		setmap.E(setmap.Key(point{1, 2}, point{3, 4}), "x"),
		setmap.E(setmap.Key(point{3, 4}, point{1, 2}), "y"),
	)
	if m.Size() != 1 {
		t.Errorf("Expected equivalent construction keys to collapse, size is %d", m.Size())
	}
	if v, _ := m.Get(setmap.Key(point{1, 2}, point{3, 4})); v != "y" {
		t.Errorf("Expected the later value to win, is %q", v)
	}
}

func TestUpdateInPlace(t *testing.T) {
	m := NewNatural[string, int]()
	first := setmap.Key("a", "b")
	m.Put(first, 1)
	m.Put(setmap.Key("x"), 9)
	m.Put(setmap.Key("b", "a"), 2)
	if m.Size() != 2 {
		t.Errorf("Expected update to keep size at 2, is %d", m.Size())
	}
	var keys []*setmap.KeySet[string]
	for ks := range m.Keys() {
		keys = append(keys, ks)
	}
	if len(keys) != 2 || keys[0] != first {
		t.Errorf("Expected the original key object to stay in first position, order is %v", keys)
	}
	if v, _ := m.Get(first); v != 2 {
		t.Errorf("Expected updated value 2, is %v", v)
	}
}

func TestDelete(t *testing.T) {
	m := NewNatural[int, int]()
	m.Put(setmap.Key(1, 2), 3)
	if !m.Delete(setmap.Key(2, 1)) {
		t.Error("Expected delete of an equivalent key to succeed")
	}
	if m.Delete(setmap.Key(1, 2)) {
		t.Error("Expected second delete to report absence")
	}
	m.Put(setmap.Key(1, 2), 4) // bucket must be usable after removal
	if v, _ := m.Get(setmap.Key(2, 1)); v != 4 {
		t.Errorf("Expected re-inserted value 4, is %v", v)
	}
}

// opaque's field is unexported, hence invisible to the content digest: every
// key set fingerprints identically. Matching must still go by set equality.
type opaque struct{ id int }

func opaqueComparator(a, b interface{}) int {
	return utils.IntComparator(a.(opaque).id, b.(opaque).id)
}

func TestDigestCollisionsStayCorrect(t *testing.T) {
	m := New[opaque, string](opaqueComparator)
	m.Put(setmap.Key(opaque{1}, opaque{2}), "x")
	m.Put(setmap.Key(opaque{3}), "y")
	if v, ok := m.Get(setmap.Key(opaque{2}, opaque{1})); !ok || v != "x" {
		t.Errorf("Expected colliding digests to still match {1,2}, got %q (%v)", v, ok)
	}
	if v, ok := m.Get(setmap.Key(opaque{3})); !ok || v != "y" {
		t.Errorf("Expected colliding digests to still match {3}, got %q (%v)", v, ok)
	}
	if m.Has(setmap.Key(opaque{1})) {
		t.Error("Expected {1} to be absent despite sharing a bucket")
	}
	if !m.Delete(setmap.Key(opaque{3})) {
		t.Error("Expected to delete {3} from the shared bucket")
	}
	if m.Size() != 1 {
		t.Errorf("Expected 1 entry to survive, size is %d", m.Size())
	}
}

func TestTraversalOrder(t *testing.T) {
	m := NewNatural[int, int](
		setmap.E(setmap.Key(1, 2), 3),
		setmap.E(setmap.Key(4, 5), 6),
	)
	var values []int
	for v := range m.Values() {
		values = append(values, v)
	}
	if diff := cmp.Diff([]int{3, 6}, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	seq := m.Entries()
	for range seq {
		break
	}
	count := 0
	for range seq { // sequences restart from the top
		count++
	}
	if count != 2 {
		t.Errorf("Expected restarted sequence to yield 2 entries, got %d", count)
	}
}

func TestEach(t *testing.T) {
	m := NewNatural[int, int](
		setmap.E(setmap.Key(1, 2), 3),
		setmap.E(setmap.Key(4, 5), 6),
	)
	var values []int
	m.Each(func(ks *setmap.KeySet[int], v int) {
		values = append(values, v)
	})
	if diff := cmp.Diff([]int{3, 6}, values); diff != "" {
		t.Errorf("visit mismatch (-want +got):\n%s", diff)
	}
}

func TestForEach(t *testing.T) {
	m := NewNatural[int, int](
		setmap.E(setmap.Key(1, 2), 3),
		setmap.E(setmap.Key(4, 5), 6),
	)
	seen := 0
	var order []int
	m.ForEach(func(v int, ks *setmap.KeySet[int], mm *Map[int, int]) {
		if mm != m {
			t.Error("Expected the third callback argument to be the map itself")
		}
		seen++
		order = append(order, v)
	})
	if seen != 2 {
		t.Errorf("Expected the callback to run once per entry, ran %d times", seen)
	}
	if diff := cmp.Diff([]int{3, 6}, order); diff != "" {
		t.Errorf("ForEach mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyKey(t *testing.T) {
	m := NewNatural[string, int]()
	m.Put(setmap.Key[string](), 7)
	if v, ok := m.Get(setmap.Key[string]()); !ok || v != 7 {
		t.Errorf("Expected the empty key to address an entry, got %v (%v)", v, ok)
	}
}

func TestClear(t *testing.T) {
	m := NewNatural[string, int](setmap.E(setmap.Key("a"), 1))
	m.Clear()
	if !m.Empty() {
		t.Errorf("Expected cleared map to be empty, size is %d", m.Size())
	}
	m.Put(setmap.Key("a"), 2)
	if v, _ := m.Get(setmap.Key("a")); v != 2 {
		t.Errorf("Expected 2 after re-insert, is %v", v)
	}
}

func TestString(t *testing.T) {
	m := NewNatural[string, int](setmap.E(setmap.Key("a", "b"), 1))
	if s := m.String(); s != "[{a,b} = 1]" {
		t.Errorf("Expected [{a,b} = 1], is %q", s)
	}
}

func TestMarshalJSON(t *testing.T) {
	m := NewNatural[string, int](
		setmap.E(setmap.Key("a", "b"), 1),
		setmap.E(setmap.Key("c"), 2),
	)
	data, err := json.Marshal(m)
	if err != nil {
		t.Error(err)
	}
	want := `[[["a","b"],1],[["c"],2]]`
	if string(data) != want {
		t.Errorf("Expected %s, is %s", want, data)
	}
}

package idmap

// Map interns values of type K into dense integer ids.
// The zero value is not usable; construct with New or WithCapacity.
type Map[K comparable] struct {
	forward  map[K]int // value → id
	backward []K       // id → value
}

// InsertResult is the outcome of Map.InsertResult.
//   - ID:       the value's id (existing or freshly assigned).
//   - Inserted: true if the value was new, false if it was already contained.
type InsertResult struct {
	ID       int
	Inserted bool
}

// WasContained reports whether the value existed before the insert.
func (r InsertResult) WasContained() bool { return !r.Inserted }

// New returns an empty Map.
func New[K comparable]() *Map[K] {
	return &Map[K]{
		forward:  make(map[K]int),
		backward: make([]K, 0),
	}
}

// WithCapacity returns an empty Map pre-sized for n values.
// A negative n is treated as zero.
func WithCapacity[K comparable](n int) *Map[K] {
	if n < 0 {
		n = 0
	}
	return &Map[K]{
		forward:  make(map[K]int, n),
		backward: make([]K, 0, n),
	}
}

// Len returns the number of distinct values ever inserted.
func (m *Map[K]) Len() int { return len(m.backward) }

// IsEmpty reports whether no value has been inserted yet.
func (m *Map[K]) IsEmpty() bool { return m.Len() == 0 }

// Insert returns the id of v, assigning the next sequential id if v is new.
// Inserting an existing value does not mutate the map.
func (m *Map[K]) Insert(v K) int {
	return m.InsertResult(v).ID
}

// InsertResult behaves like Insert but also reports whether v was new.
func (m *Map[K]) InsertResult(v K) InsertResult {
	if id, ok := m.forward[v]; ok {
		return InsertResult{ID: id, Inserted: false}
	}
	id := len(m.backward)
	m.forward[v] = id
	m.backward = append(m.backward, v)

	return InsertResult{ID: id, Inserted: true}
}

// ID returns the id of v and whether v is present.
func (m *Map[K]) ID(v K) (int, bool) {
	id, ok := m.forward[v]
	return id, ok
}

// Value returns the value interned under id and whether id is in range.
func (m *Map[K]) Value(id int) (K, bool) {
	if !m.ContainsID(id) {
		var zero K
		return zero, false
	}
	return m.backward[id], true
}

// ContainsValue reports whether v has been interned.
func (m *Map[K]) ContainsValue(v K) bool {
	_, ok := m.forward[v]
	return ok
}

// ContainsID reports whether id has been assigned.
func (m *Map[K]) ContainsID(id int) bool {
	return id >= 0 && id < len(m.backward)
}

// Values returns a copy of all interned values in id order.
func (m *Map[K]) Values() []K {
	out := make([]K, len(m.backward))
	copy(out, m.backward)
	return out
}

package core

// Memtable is the in-memory table holding the full current state of the
// store: one entry per live key, mapping it to its latest value.
//
// It is rebuilt on startup by replaying the log and is the only structure
// consulted on reads; no disk access happens on the read path.
//
// The table owns every buffer it stores. Values are copied in on Put and the
// map key materializes its own copy of the key bytes, so entries never alias
// caller memory.
type Memtable struct {
	entries map[string][]byte
}

func NewMemtable() *Memtable {
	return &Memtable{entries: make(map[string][]byte)}
}

// Put stores a copy of value under key. Inserting a new key copies the key
// bytes as well; overwriting keeps the existing key and drops the old value
// buffer entirely.
func (t *Memtable) Put(key, value []byte) {
	owned := make([]byte, len(value))
	copy(owned, value)
	t.entries[string(key)] = owned
}

// Get returns the value stored under key, or ErrNotFound. The returned slice
// is the table's own buffer: a borrowed view, valid only until the next
// mutation of that key. Callers that retain it must copy it first.
func (t *Memtable) Get(key []byte) ([]byte, error) {
	value, ok := t.entries[string(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

// Del removes key and its value, or returns ErrNotFound for an absent key.
func (t *Memtable) Del(key []byte) error {
	if _, ok := t.entries[string(key)]; !ok {
		return ErrNotFound
	}
	delete(t.entries, string(key))
	return nil
}

// Len reports the number of live keys.
func (t *Memtable) Len() int {
	return len(t.entries)
}

// Keys returns the live keys in no particular order.
func (t *Memtable) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}

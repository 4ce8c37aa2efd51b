package core_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dilroop-us/poeckt-kv/core"
)

func TestMemtablePutGet(t *testing.T) {
	mt := core.NewMemtable()

	mt.Put([]byte("foo"), []byte("bar"))

	val, err := mt.Get([]byte("foo"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(val, []byte("bar")) {
		t.Fatalf("expected bar, got %q", val)
	}
}

func TestMemtableGetMissing(t *testing.T) {
	mt := core.NewMemtable()

	if _, err := mt.Get([]byte("nope")); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemtableOverwrite(t *testing.T) {
	mt := core.NewMemtable()

	mt.Put([]byte("k"), []byte("a much longer first value"))
	mt.Put([]byte("k"), []byte("v2"))

	val, err := mt.Get([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(val, []byte("v2")) {
		t.Fatalf("expected v2, got %q", val)
	}
	if mt.Len() != 1 {
		t.Fatalf("expected 1 key, got %d", mt.Len())
	}
}

func TestMemtableDelete(t *testing.T) {
	mt := core.NewMemtable()

	mt.Put([]byte("k"), []byte("v"))

	if err := mt.Del([]byte("k")); err != nil {
		t.Fatal(err)
	}
	if _, err := mt.Get([]byte("k")); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := mt.Del([]byte("k")); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemtableDoesNotAliasCallerBuffers(t *testing.T) {
	mt := core.NewMemtable()

	key := []byte("shared")
	value := []byte("original")
	mt.Put(key, value)

	// Mutating the caller's buffers must not reach the stored entry.
	key[0] = 'X'
	value[0] = 'X'

	val, err := mt.Get([]byte("shared"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(val, []byte("original")) {
		t.Fatalf("stored value aliases caller buffer: %q", val)
	}
}

func TestMemtableBinaryKeysAndValues(t *testing.T) {
	mt := core.NewMemtable()

	key := []byte{0x00, 0xFF, 0x00}
	value := []byte{0xDE, 0xAD, 0x00, 0xBE, 0xEF}
	mt.Put(key, value)

	val, err := mt.Get([]byte{0x00, 0xFF, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(val, value) {
		t.Fatalf("expected %v, got %v", value, val)
	}
}

func TestMemtableEmptyValue(t *testing.T) {
	mt := core.NewMemtable()

	mt.Put([]byte("empty"), []byte{})

	val, err := mt.Get([]byte("empty"))
	if err != nil {
		t.Fatal(err)
	}
	if len(val) != 0 {
		t.Fatalf("expected empty value, got %v", val)
	}
}

func TestMemtableKeys(t *testing.T) {
	mt := core.NewMemtable()

	mt.Put([]byte("a"), []byte("1"))
	mt.Put([]byte("b"), []byte("2"))

	keys := mt.Keys()
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}

	seen := map[string]bool{}
	for _, k := range keys {
		seen[k] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Fatalf("missing keys in %v", keys)
	}
}

// Package core implements a durable key-value store: an in-memory table
// backed by an append-only log file.
//
// Every mutation is appended to the log and synced to disk before it touches
// the table, so the log is always the authoritative state. Opening a store
// replays the log front to back to rebuild the table; a log that ends
// mid-record fails the open rather than being repaired.
//
// Example:
//
//	store, err := core.Open("./data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	err = store.Put([]byte("foo"), []byte("bar"))
//	val, err := store.Get([]byte("foo"))
//
// A Store is not safe for concurrent use.
package core

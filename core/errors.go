package core

import "errors"

var (
	// ErrNotFound is returned by Get and Del when the key has no live entry.
	// It is the one recoverable error in the store: nothing is written to the
	// log and the instance stays fully usable.
	ErrNotFound = errors.New("poeckt: key not found")

	// ErrCorruptLog is returned by Open when replay hits bytes that cannot be
	// a well-formed record: a truncated tail, an unknown tag or a length over
	// its bound. The store refuses to open and serves no partial state.
	ErrCorruptLog = errors.New("poeckt: corrupt log")

	// ErrClosed is returned by every operation once Close has been called.
	ErrClosed = errors.New("poeckt: store is closed")

	// ErrInconsistent is returned once the log and the in-memory table can no
	// longer be proven to agree: a write left a suspect tail, or a memory
	// mutation failed after its record was already appended. Reopening the
	// store replays the authoritative log.
	ErrInconsistent = errors.New("poeckt: log and memory have diverged")
)

package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dilroop-us/poeckt-kv/internal/lock"
	"github.com/dilroop-us/poeckt-kv/internal/record"
	"github.com/dilroop-us/poeckt-kv/internal/utils"
)

type storeState int

const (
	stateOpening storeState = iota
	stateReplaying
	stateReady
	stateFailed
	stateClosed
)

// Store is a durable key-value store: a Memtable holding the live state and
// a single append-only log file holding its authoritative history.
//
// All operations are synchronous and block until done. A Store is not safe
// for concurrent use; the directory lock additionally keeps a second process
// from opening the same store.
type Store struct {
	dir     string
	path    string
	logFile *os.File
	dirLock *lock.FileLock
	mem     *Memtable
	state   storeState
	log     *slog.Logger
}

// Open opens the store rooted at dir, creating the directory and the log
// file if they do not exist, and replays the log front to back into memory.
//
// A log that ends mid-record or contains bytes the encoder could not have
// written fails the open with ErrCorruptLog; nothing is repaired or
// truncated, and no partial state is served.
func Open(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, errors.New("poeckt: store directory is not set")
	}

	options := defaultStoreOptions()
	for _, opt := range opts {
		opt(&options)
	}

	s := &Store{
		dir:   dir,
		path:  filepath.Join(dir, options.logFileName),
		mem:   NewMemtable(),
		state: stateOpening,
		log:   options.logger,
	}

	if err := s.openStoreDirectory(); err != nil {
		return nil, err
	}

	dl, err := lock.Acquire(s.dir)
	if err != nil {
		return nil, err
	}
	s.dirLock = dl

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, LogFileMode)
	if err != nil {
		s.dirLock.Release()
		return nil, err
	}
	s.logFile = f

	s.state = stateReplaying
	applied, err := s.replay()
	if err != nil {
		s.logFile.Close()
		s.dirLock.Release()
		return nil, err
	}

	s.state = stateReady
	s.log.Info("store opened", "dir", s.dir, "records", applied, "keys", s.mem.Len())

	return s, nil
}

func (s *Store) openStoreDirectory() error {
	if utils.PathExists(s.dir) {
		return nil
	}

	s.log.Info("store directory does not exist, creating it", "dir", s.dir)
	return os.MkdirAll(s.dir, StoreDirMode)
}

// replay reads the whole log and applies each record to the table, returning
// how many records were applied. Replay only ever reads: a clean EOF at a
// record boundary is the expected end, anything else fails the open.
func (s *Store) replay() (int, error) {
	if _, err := s.logFile.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	reader := bufio.NewReader(s.logFile)

	var offset int64
	applied := 0

	for {
		rec, size, err := record.ReadRecord(reader)
		if err == io.EOF {
			return applied, nil
		}
		if err != nil {
			if errors.Is(err, record.ErrMalformed) {
				return 0, fmt.Errorf("%w at offset %d: %v", ErrCorruptLog, offset, err)
			}
			return 0, err
		}

		switch rec.Tag {
		case record.TagPut:
			s.mem.Put(rec.Key, rec.Value)
		case record.TagDelete:
			// A tombstone for an absent key is structurally fine; skip it.
			if err := s.mem.Del(rec.Key); err != nil && !errors.Is(err, ErrNotFound) {
				return 0, err
			}
		}

		offset += size
		applied++
	}
}

func (s *Store) ensureReady() error {
	switch s.state {
	case stateReady:
		return nil
	case stateFailed:
		return ErrInconsistent
	default:
		return ErrClosed
	}
}

// Put stores value under key. The record is appended to the log and synced
// before the table is touched, so the log stays authoritative through a
// crash at any point. An oversized key or value is rejected before any byte
// is written.
func (s *Store) Put(key, value []byte) error {
	if err := s.ensureReady(); err != nil {
		return err
	}

	rec := record.CreatePutRecord(key, value)
	encoded, err := record.EncodeRecord(&rec)
	if err != nil {
		return err
	}

	if err := s.appendToLogFile(encoded); err != nil {
		return err
	}

	s.mem.Put(key, value)
	return nil
}

// Get returns the value stored under key without touching the log. The
// returned slice is a borrowed view into the table, valid only until the
// next mutation of that key.
func (s *Store) Get(key []byte) ([]byte, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	return s.mem.Get(key)
}

// Del removes key. An absent key returns ErrNotFound and leaves the log
// untouched; otherwise a tombstone is appended and synced before the entry
// is dropped from the table.
func (s *Store) Del(key []byte) error {
	if err := s.ensureReady(); err != nil {
		return err
	}

	if _, err := s.mem.Get(key); err != nil {
		return err
	}

	rec := record.CreateDeleteRecord(key)
	encoded, err := record.EncodeRecord(&rec)
	if err != nil {
		return err
	}

	if err := s.appendToLogFile(encoded); err != nil {
		return err
	}

	if err := s.mem.Del(key); err != nil {
		// The tombstone is on disk but the table refused the delete. The two
		// sides no longer agree; only a restart and replay recovers.
		s.state = stateFailed
		return fmt.Errorf("%w: %v", ErrInconsistent, err)
	}

	return nil
}

// Len reports the number of live keys.
func (s *Store) Len() int {
	return s.mem.Len()
}

// Keys returns the live keys in no particular order.
func (s *Store) Keys() []string {
	return s.mem.Keys()
}

// appendToLogFile writes one encoded record at the current end of the log
// and syncs it. A failed write or sync leaves the tail suspect, so the store
// stops accepting operations until it is reopened and replayed.
func (s *Store) appendToLogFile(data []byte) error {
	if _, err := s.logFile.Seek(0, io.SeekEnd); err != nil {
		return err
	}

	if _, err := s.logFile.Write(data); err != nil {
		s.state = stateFailed
		return err
	}

	if err := s.logFile.Sync(); err != nil {
		s.state = stateFailed
		return err
	}

	return nil
}

// Close releases the log file and the directory lock. Every record was
// synced when it was appended, so no flush is owed here. All further
// operations, Close included, return ErrClosed.
func (s *Store) Close() error {
	if s.state == stateClosed {
		return ErrClosed
	}
	s.state = stateClosed

	var err error
	if s.logFile != nil {
		err = s.logFile.Close()
	}
	if s.dirLock != nil {
		s.dirLock.Release()
	}

	s.log.Info("store closed", "dir", s.dir)
	return err
}

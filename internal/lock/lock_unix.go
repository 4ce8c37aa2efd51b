//go:build unix

package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileLock holds the open handle backing a directory lock. The handle must
// stay open for as long as the lock is held.
type FileLock struct {
	f *os.File
}

// Acquire takes an exclusive, non-blocking advisory lock on the given
// directory using a lock file.
//
// On Unix systems, this uses flock(2) to place an exclusive lock on a file
// named "LOCK" inside the directory. If the lock cannot be acquired, the
// directory is assumed to be in use by another poeckt instance.
func Acquire(path string) (*FileLock, error) {
	lockFilePath := filepath.Join(path, "LOCK")

	f, err := os.OpenFile(lockFilePath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("directory already in use by another poeckt instance")
	}

	return &FileLock{f: f}, nil
}

// Release releases the advisory flock and closes the file.
//
// The lock file itself is left in place; a later Acquire reuses it.
func (l *FileLock) Release() error {
	syscall.Flock(int(l.f.Fd()), syscall.LOCK_UN)
	return l.f.Close()
}

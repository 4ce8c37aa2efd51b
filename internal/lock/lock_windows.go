//go:build windows

package lock

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileLock holds the open handle backing a directory lock. The handle must
// stay open for as long as the lock is held.
type FileLock struct {
	f *os.File
}

// Acquire takes an exclusive lock on the given directory using a lock file.
//
// On Windows, this is implemented by atomically creating a file named "LOCK"
// inside the directory. If the file already exists, the directory is assumed
// to be in use by another poeckt instance.
func Acquire(path string) (*FileLock, error) {
	lockFilePath := filepath.Join(path, "LOCK")

	f, err := os.OpenFile(lockFilePath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("directory already in use by another poeckt instance")
	}

	return &FileLock{f: f}, nil
}

// Release removes the lock file from disk. Release should be called exactly
// once for each successful Acquire.
func (l *FileLock) Release() error {
	name := l.f.Name()
	err := l.f.Close()
	os.Remove(name)
	return err
}

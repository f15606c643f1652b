// Package blob stores receipt files on the local filesystem, addressed by
// generated name. It knows nothing about payments; the ledger holds the
// name, the blob store holds the bytes.
package blob

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("blob: not found")
	ErrInvalidName = errors.New("blob: invalid name")
)

type Store struct {
	dir string
}

// NewStore opens (creating if needed) a directory-backed blob store.
func NewStore(dir string) (*Store, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("blob: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Put writes data under name atomically: the bytes land in a temp file that
// is renamed into place, so a reader never observes a partial receipt.
func (s *Store) Put(name string, data []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("blob: create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("blob: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("blob: close temp: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("blob: rename: %w", err)
	}
	return nil
}

// Open returns a reader over the named blob.
func (s *Store) Open(name string) (io.ReadCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// Delete removes the named blob. Deleting an absent blob is not an error.
func (s *Store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// List returns the names of all stored blobs, skipping in-flight temp files.
func (s *Store) List() ([]string, error) {
	return s.list(0)
}

// ListOlderThan returns blobs whose last modification is at least minAge in
// the past. The sweeper uses this so a receipt written moments ago, whose
// ledger row is still being inserted, is never treated as an orphan.
func (s *Store) ListOlderThan(minAge time.Duration) ([]string, error) {
	return s.list(minAge)
}

func (s *Store) list(minAge time.Duration) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-minAge)

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".upload-") {
			continue
		}
		if minAge > 0 {
			info, err := e.Info()
			if err != nil || info.ModTime().After(cutoff) {
				continue
			}
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// path validates name and resolves it inside the store directory. Names with
// separators or traversal elements are rejected outright.
func (s *Store) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}

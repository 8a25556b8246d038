// Package pref persists user preferences as string key/value pairs.
package pref

import (
	"fmt"
	"path/filepath"
)

// Store reads and writes preferences. Get reports ok=false when the key
// has never been written.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Backends returns the supported backend names.
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendMemory}
}

// Open returns the store for backend rooted at dir. The returned close
// function releases the store and must always be called.
func Open(backend, dir string) (Store, func() error, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(filepath.Join(dir, FileStoreName)), func() error { return nil }, nil
	case BackendSQLite:
		s, err := OpenSQLite(filepath.Join(dir, SQLiteStoreName))
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case BackendMemory:
		return NewMemoryStore(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown preference backend %q", backend)
	}
}

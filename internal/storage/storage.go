// Package storage provides the local key-value slot the note collection is
// persisted into.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrClosed = errors.New("storage is closed")

// Storage is a string key-value slot in the spirit of browser local storage.
type Storage interface {
	// GetItem returns the stored value and whether one exists.
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	Close() error
}

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

var ValidDrivers = map[string]bool{
	DriverFile:   true,
	DriverSQLite: true,
}

// Open returns the driver rooted at dir.
func Open(driver, dir string) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverFile, "":
		return NewFileStorage(dir)
	case DriverSQLite:
		return NewSQLiteStorage(filepath.Join(dir, "easynote.sqlite"))
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("storage key cannot be empty")
	}
	return nil
}

package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotExist is returned by Read when no document has been stored yet.
var ErrNotExist = errors.New("backend: document does not exist")

// Backend stores the serialized roster document.
type Backend interface {
	// Read returns the stored document or ErrNotExist.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the stored document with data.
	Write(ctx context.Context, data []byte) error

	// Describe returns a human-readable location, used in logs and errors.
	Describe() string

	Close() error
}

// Kind names a backend implementation.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)

// ValidKinds lists the accepted backend kinds.
var ValidKinds = []Kind{KindFile, KindSQLite}

// ParseKind converts a config or flag value to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ValidKinds {
		if k == valid {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown backend %q: must be one of %v", s, ValidKinds)
}

// Open returns the backend of the given kind rooted at path.
func Open(kind Kind, path string) (Backend, error) {
	switch kind {
	case KindFile:
		return NewFile(path), nil
	case KindSQLite:
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", kind)
	}
}

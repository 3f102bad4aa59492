package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/roach88/staffbook/internal/testutil"
)

// quietLogger discards store logs in tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestStore returns a loaded store over an empty in-memory backend.
func createTestStore(t *testing.T, opts ...Option) (*Store, *testutil.MemoryBackend) {
	t.Helper()
	b := testutil.NewMemoryBackend()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	s, err := Open(context.Background(), b, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return s, b
}

// mustAdd adds a record or fails the test.
func mustAdd(t *testing.T, s *Store, id int64, name, title string, comp float64) {
	t.Helper()
	if err := s.Add(context.Background(), id, name, title, comp); err != nil {
		t.Fatalf("Add(%d) failed: %v", id, err)
	}
}

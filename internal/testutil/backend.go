package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/roach88/staffbook/internal/backend"
)

// ErrInjected is returned by MemoryBackend when a failure is armed.
var ErrInjected = errors.New("testutil: injected backend failure")

// MemoryBackend is an in-memory backend.Backend for tests.
//
// It records how many writes happened so tests can assert that failed
// operations never persisted. ReadErr and WriteErr inject failures.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type MemoryBackend struct {
	mu       sync.Mutex
	data     []byte
	exists   bool
	writes   int
	ReadErr  error
	WriteErr error
}

var _ backend.Backend = (*MemoryBackend)(nil)

// NewMemoryBackend creates an empty backend. Read returns backend.ErrNotExist
// until the first Write.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// NewMemoryBackendWith creates a backend that already holds doc.
func NewMemoryBackendWith(doc string) *MemoryBackend {
	return &MemoryBackend{data: []byte(doc), exists: true}
}

// Read implements backend.Backend.
func (m *MemoryBackend) Read(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	if !m.exists {
		return nil, backend.ErrNotExist
	}
	return append([]byte(nil), m.data...), nil
}

// Write implements backend.Backend.
func (m *MemoryBackend) Write(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.data = append([]byte(nil), data...)
	m.exists = true
	m.writes++
	return nil
}

// Describe implements backend.Backend.
func (m *MemoryBackend) Describe() string {
	return "memory"
}

// Close implements backend.Backend.
func (m *MemoryBackend) Close() error {
	return nil
}

// Contents returns the last written document.
func (m *MemoryBackend) Contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.data)
}

// Writes returns the number of successful writes.
func (m *MemoryBackend) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// FailWrites arms (or disarms, with nil) write failures.
func (m *MemoryBackend) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteErr = err
}

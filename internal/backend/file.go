package backend

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// File stores the document as a plain file.
type File struct {
	path string
	perm os.FileMode
}

// NewFile returns a File backend for path. The file is not touched until
// the first Read or Write.
func NewFile(path string) *File {
	return &File{path: path, perm: 0o644}
}

// Path returns the target file path.
func (f *File) Path() string {
	return f.path
}

// Describe implements Backend.
func (f *File) Describe() string {
	return f.path
}

// Read implements Backend.
func (f *File) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return data, nil
}

// Write implements Backend.
//
// The data is written to a uniquely named temp file next to the target,
// synced, and renamed over the target. Readers see either the old or the
// new document, never a prefix of the new one.
func (f *File) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	perm := f.perm
	if info, err := os.Stat(f.path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(f.path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(f.path), uuid.Must(uuid.NewV7())))

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", f.path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", f.path, err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// Close implements Backend. File holds no open handles between calls.
func (f *File) Close() error {
	return nil
}

package backend

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestSQLite opens a fresh SQLite backend in a temp dir.
func createTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestSQLite_Pragmas(t *testing.T) {
	s, _ := createTestSQLite(t)

	if err := s.verifyPragma("journal_mode", "wal"); err != nil {
		t.Error(err)
	}
	if err := s.verifyPragma("synchronous", "1"); err != nil {
		t.Error(err)
	}
	if err := s.verifyPragma("busy_timeout", "5000"); err != nil {
		t.Error(err)
	}
	if err := s.verifyPragma("user_version", "1"); err != nil {
		t.Error(err)
	}
}

func TestSQLite_ReadMissing(t *testing.T) {
	s, _ := createTestSQLite(t)

	_, err := s.Read(context.Background())

	assert.ErrorIs(t, err, ErrNotExist)
}

func TestSQLite_WriteThenRead(t *testing.T) {
	s, path := createTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, []byte(`[{"employee_id":1}]`)))
	require.NoError(t, s.Write(ctx, []byte(`[]`)))

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	rev, err := s.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rev)
	assert.Equal(t, "sqlite:"+path, s.Describe())
}

func TestSQLite_RevisionBeforeWrite(t *testing.T) {
	s, _ := createTestSQLite(t)

	rev, err := s.Revision(context.Background())

	require.NoError(t, err)
	assert.Zero(t, rev)
}

func TestSQLite_ReopenKeepsDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s1, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s1.Write(ctx, []byte(`[]`)))
	require.NoError(t, s1.Close())

	s2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestSQLite_MigratesLegacyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE documents (name TEXT PRIMARY KEY, body BLOB NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO documents (name, body) VALUES ('employees', '[]')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	rev, err := s.Revision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)
}

func TestSQLite_InvalidPath(t *testing.T) {
	_, err := OpenSQLite("/nonexistent/dir/test.db")
	if err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestSQLite_CloseNilDB(t *testing.T) {
	s := &SQLite{db: nil}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}

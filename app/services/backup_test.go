package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "galia.db")
	original := []byte("sqlite file contents, exact bytes matter")
	require.NoError(t, os.WriteFile(dbPath, original, 0o644))

	archive, err := CreateBackup(dbPath)
	require.NoError(t, err)
	require.NotEmpty(t, archive)

	// Clobber the file, then restore from the archive.
	require.NoError(t, os.WriteFile(dbPath, []byte("garbage"), 0o644))
	require.NoError(t, RestoreBackup(dbPath, archive))

	restored, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestRestoreBackupRejectsInvalidArchive(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "galia.db")
	original := []byte("live data")
	require.NoError(t, os.WriteFile(dbPath, original, 0o644))

	err := RestoreBackup(dbPath, []byte("not a zip"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid backup archive")

	// The live database was never touched.
	data, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestRestoreBackupRejectsWrongEntryName(t *testing.T) {
	dir := t.TempDir()
	otherPath := filepath.Join(dir, "other.db")
	require.NoError(t, os.WriteFile(otherPath, []byte("x"), 0o644))
	archive, err := CreateBackup(otherPath)
	require.NoError(t, err)

	dbPath := filepath.Join(dir, "galia.db")
	original := []byte("live data")
	require.NoError(t, os.WriteFile(dbPath, original, 0o644))

	err = RestoreBackup(dbPath, archive)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not contain galia.db")

	data, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestCreateBackupMissingFile(t *testing.T) {
	_, err := CreateBackup(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}

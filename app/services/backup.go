package services

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CreateBackup zips the database file into a single-entry archive. The
// entry is named after the file itself so a restore can find it without
// extra metadata.
func CreateBackup(dbPath string) ([]byte, error) {
	data, err := os.ReadFile(dbPath)
	if err != nil {
		return nil, fmt.Errorf("reading database file: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create(filepath.Base(dbPath))
	if err != nil {
		return nil, fmt.Errorf("creating archive entry: %w", err)
	}
	if _, err := entry.Write(data); err != nil {
		return nil, fmt.Errorf("writing archive entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// RestoreBackup replaces the database file with the copy inside a backup
// archive. The archive is validated in full before the file is touched, so
// a bad upload never clobbers the live database.
func RestoreBackup(dbPath string, archive []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return errors.New("uploaded file is not a valid backup archive")
	}

	want := filepath.Base(dbPath)
	var found *zip.File
	for _, f := range zr.File {
		if f.Name == want {
			found = f
			break
		}
	}
	if found == nil {
		return fmt.Errorf("backup archive does not contain %s", want)
	}

	rc, err := found.Open()
	if err != nil {
		return fmt.Errorf("opening archive entry: %w", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("reading archive entry: %w", err)
	}

	if err := os.WriteFile(dbPath, data, 0o644); err != nil {
		return fmt.Errorf("writing database file: %w", err)
	}
	return nil
}

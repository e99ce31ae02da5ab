package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStorage writes one empty file per table into a directory
type FileStorage struct {
	dir    string
	suffix string
}

// NewFileStorage creates a file storage rooted at dir, creating dir if needed
func NewFileStorage(dir, suffix string) (*FileStorage, error) {
	if dir == "" {
		dir = "."
	}
	if strings.ContainsAny(suffix, `/\`) {
		return nil, fmt.Errorf("invalid marker suffix %q", suffix)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileStorage{
		dir:    dir,
		suffix: suffix,
	}, nil
}

// Path returns the marker path for tableName
func (s *FileStorage) Path(tableName string) string {
	return filepath.Join(s.dir, tableName+s.suffix)
}

// CreateTable creates an empty marker, truncating any existing one
func (s *FileStorage) CreateTable(tableName string) error {
	f, err := os.OpenFile(s.Path(tableName), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create marker for table '%s': %w", tableName, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close marker for table '%s': %w", tableName, err)
	}
	return nil
}

// HasTable reports whether the marker file exists
func (s *FileStorage) HasTable(tableName string) (bool, error) {
	_, err := os.Stat(s.Path(tableName))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat marker for table '%s': %w", tableName, err)
}

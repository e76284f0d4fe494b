package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrOutsideRoot is returned for paths escaping the storage directory
var ErrOutsideRoot = errors.New("path escapes storage root")

// LocalStorage keeps archived documents on the local filesystem
type LocalStorage struct {
	basePath string
	now      func() time.Time
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, now: time.Now}, nil
}

// UploadFromBytes saves data under subDir/YYYY/MM with a unique name that
// keeps the extension of filename. It returns the path relative to the root.
func (s *LocalStorage) UploadFromBytes(data []byte, filename string, subDir string) (string, error) {
	dir := filepath.Join(s.basePath, filepath.Clean("/"+subDir), s.now().Format("2006/01"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name := fmt.Sprintf("%s_%s%s", sanitize(stem), uuid.NewString(), strings.ToLower(filepath.Ext(filename)))
	filePath := filepath.Join(dir, name)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	relPath, err := filepath.Rel(s.basePath, filePath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(relPath), nil
}

// Download returns a file for reading
func (s *LocalStorage) Download(relativePath string) (*os.File, error) {
	filePath, err := s.resolve(relativePath)
	if err != nil {
		return nil, err
	}
	return os.Open(filePath)
}

// Delete removes a file
func (s *LocalStorage) Delete(relativePath string) error {
	filePath, err := s.resolve(relativePath)
	if err != nil {
		return err
	}
	return os.Remove(filePath)
}

// Exists checks if a file exists
func (s *LocalStorage) Exists(relativePath string) bool {
	filePath, err := s.resolve(relativePath)
	if err != nil {
		return false
	}
	_, err = os.Stat(filePath)
	return err == nil
}

func (s *LocalStorage) resolve(relativePath string) (string, error) {
	filePath := filepath.Join(s.basePath, filepath.FromSlash(relativePath))
	rel, err := filepath.Rel(s.basePath, filePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}
	return filePath, nil
}

func sanitize(stem string) string {
	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "document"
	}
	return b.String()
}

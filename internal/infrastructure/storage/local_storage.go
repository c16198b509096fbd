package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/you/profilecms/domain"
)

// LocalStorageImpl implements domain.StorageService on the local filesystem.
// Files are renamed to UUIDs so uploaded names never reach the disk.
type LocalStorageImpl struct {
	dir         string
	maxBytes    int64
	allowedExts map[string]bool
}

// NewLocalStorage creates a new local-disk storage service
func NewLocalStorage(dir string, maxBytes int64, allowedExts []string) (domain.StorageService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	exts := make(map[string]bool, len(allowedExts))
	for _, ext := range allowedExts {
		exts[strings.ToLower(ext)] = true
	}

	return &LocalStorageImpl{
		dir:         dir,
		maxBytes:    maxBytes,
		allowedExts: exts,
	}, nil
}

// Save implements domain.StorageService. Returns the stored file's path
// relative to the upload dir.
func (s *LocalStorageImpl) Save(ctx context.Context, file io.Reader, filename string, size int64) (string, error) {
	if size > s.maxBytes {
		return "", domain.ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !s.allowedExts[ext] {
		return "", domain.ErrUploadType
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	// The declared size is advisory; the copy is capped regardless.
	written, err := io.Copy(dst, io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(dst.Name())
		return "", domain.ErrUploadTooLarge
	}

	return name, nil
}

// Remove implements domain.StorageService. Removing a missing file is not
// an error.
func (s *LocalStorageImpl) Remove(ctx context.Context, path string) error {
	// Reject anything that could escape the upload dir
	if path != filepath.Base(path) {
		return fmt.Errorf("invalid stored path %q", path)
	}
	err := os.Remove(filepath.Join(s.dir, path))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

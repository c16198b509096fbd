package mocks

import (
	"context"
	"io"
)

// MockStorageService implements domain.StorageService interface for testing
type MockStorageService struct {
	SaveFunc   func(ctx context.Context, file io.Reader, filename string, size int64) (string, error)
	RemoveFunc func(ctx context.Context, path string) error

	Saved   []string
	Removed []string
}

// NewMockStorageService creates a new MockStorageService with default behaviors
func NewMockStorageService() *MockStorageService {
	return &MockStorageService{}
}

// Save stores a file
func (m *MockStorageService) Save(ctx context.Context, file io.Reader, filename string, size int64) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, file, filename, size)
	}
	// Default behavior: echo the filename back
	m.Saved = append(m.Saved, filename)
	return filename, nil
}

// Remove deletes a stored file
func (m *MockStorageService) Remove(ctx context.Context, path string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, path)
	}
	// Default behavior: success
	m.Removed = append(m.Removed, path)
	return nil
}

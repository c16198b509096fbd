package mocks

import (
	"context"

	"github.com/you/profilecms/domain"
)

// MockSessionRepository implements domain.SessionRepository interface for testing
type MockSessionRepository struct {
	CreateFunc func(ctx context.Context, session *domain.Session) error
	RevokeFunc func(ctx context.Context, userID uint, token string) error
	IsLiveFunc func(ctx context.Context, userID uint, token string) (bool, error)
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create creates a new session
func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	// Default behavior: success
	return nil
}

// Revoke removes a session
func (m *MockSessionRepository) Revoke(ctx context.Context, userID uint, token string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, userID, token)
	}
	// Default behavior: success
	return nil
}

// IsLive reports whether a session exists and has not expired
func (m *MockSessionRepository) IsLive(ctx context.Context, userID uint, token string) (bool, error) {
	if m.IsLiveFunc != nil {
		return m.IsLiveFunc(ctx, userID, token)
	}
	// Default behavior: live
	return true, nil
}

package mocks

import (
	"context"
	"time"

	"github.com/you/profilecms/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	LoginFunc        func(ctx context.Context, req domain.AuthRequest, ip, userAgent string) (*domain.AuthResult, error)
	LogoutFunc       func(ctx context.Context, userID uint, token string) error
	AuthenticateFunc func(ctx context.Context, token string) (*domain.TokenClaims, error)
	ProfileFunc      func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Login performs a login
func (m *MockAuthService) Login(ctx context.Context, req domain.AuthRequest, ip, userAgent string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req, ip, userAgent)
	}
	// Default behavior: invalid credentials
	return nil, domain.ErrInvalidCredentials
}

// Logout revokes a session
func (m *MockAuthService) Logout(ctx context.Context, userID uint, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID, token)
	}
	// Default behavior: success
	return nil
}

// Authenticate runs the strong verification path
func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.TokenClaims, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	// Default behavior: valid claims for user 1
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    1,
		Role:      domain.RoleUser,
		Email:     "test@example.com",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}

// Profile loads the authenticated user
func (m *MockAuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

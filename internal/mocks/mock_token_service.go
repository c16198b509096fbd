package mocks

import (
	"time"

	"github.com/you/profilecms/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueFunc  func(user *domain.User, remember bool) (string, time.Time, error)
	VerifyFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue issues a session token
func (m *MockTokenService) Issue(user *domain.User, remember bool) (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(user, remember)
	}
	// Default behavior: fixed token, expires in an hour
	return "mock_token", time.Now().Add(time.Hour), nil
}

// Verify checks signature and embedded expiry
func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
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

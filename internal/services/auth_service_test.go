package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/you/profilecms/domain"
	"github.com/you/profilecms/internal/mocks"
)

func activeUser() *domain.User {
	return &domain.User{
		ID:           1,
		Email:        "admin@example.com",
		Username:     "admin",
		PasswordHash: "hashed_secret123",
		Role:         domain.RoleAdmin,
		Status:       domain.UserStatusActive,
	}
}

func newTestAuthService(
	userRepo *mocks.MockUserRepository,
	sessionRepo *mocks.MockSessionRepository,
	tokenSvc *mocks.MockTokenService,
	audit *mocks.MockAuditLogger,
) domain.AuthService {
	return NewAuthService(userRepo, sessionRepo, mocks.NewMockPasswordService(), tokenSvc, audit, 2*time.Second)
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		req           domain.AuthRequest
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockSessionRepository, *mocks.MockTokenService)
		expectedError error
		validate      func(t *testing.T, result *domain.AuthResult, audit *mocks.MockAuditLogger)
	}{
		{
			name: "successful login",
			req:  domain.AuthRequest{Email: "admin@example.com", Password: "secret123"},
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return activeUser(), nil
				}
			},
			validate: func(t *testing.T, result *domain.AuthResult, audit *mocks.MockAuditLogger) {
				if result.Token == "" {
					t.Error("expected a token")
				}
				if result.User.ID != 1 {
					t.Errorf("expected user 1, got %d", result.User.ID)
				}
				if !audit.HasEvent(domain.UserLoginEvent) {
					t.Error("expected USER_LOGIN audit event")
				}
			},
		},
		{
			name: "unknown email",
			req:  domain.AuthRequest{Email: "nobody@example.com", Password: "secret123"},
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				// Default FindByEmail already reports not found.
			},
			expectedError: domain.ErrInvalidCredentials,
			validate: func(t *testing.T, result *domain.AuthResult, audit *mocks.MockAuditLogger) {
				if !audit.HasEvent(domain.UserLoginFailureEvent) {
					t.Error("expected USER_LOGIN_FAILED audit event")
				}
			},
		},
		{
			name: "wrong password",
			req:  domain.AuthRequest{Email: "admin@example.com", Password: "not the password"},
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return activeUser(), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name: "inactive account with correct password",
			req:  domain.AuthRequest{Email: "admin@example.com", Password: "secret123"},
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					u := activeUser()
					u.Status = domain.UserStatusDisabled
					return u, nil
				}
			},
			expectedError: domain.ErrUserInactive,
		},
		{
			name: "inactive account with wrong password stays generic",
			req:  domain.AuthRequest{Email: "admin@example.com", Password: "wrong"},
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					u := activeUser()
					u.Status = domain.UserStatusDisabled
					return u, nil
				}
			},
			// The caller has not proved the password, so the account
			// state must not leak.
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name: "session store down",
			req:  domain.AuthRequest{Email: "admin@example.com", Password: "secret123"},
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return activeUser(), nil
				}
				sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
					return domain.ErrSessionStoreUnavailable
				}
			},
			expectedError: domain.ErrSessionStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			sessionRepo := mocks.NewMockSessionRepository()
			tokenSvc := mocks.NewMockTokenService()
			audit := mocks.NewMockAuditLogger()
			tt.setupMocks(userRepo, sessionRepo, tokenSvc)

			svc := newTestAuthService(userRepo, sessionRepo, tokenSvc, audit)
			result, err := svc.Login(context.Background(), tt.req, "10.0.0.1", "test-agent")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if result != nil {
					t.Error("expected nil result on failure")
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, result, audit)
			}
		})
	}
}

func TestAuthServiceImpl_LoginCreatesSessionForIssuedToken(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return activeUser(), nil
	}

	var created *domain.Session
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
		created = session
		return nil
	}

	tokenSvc := mocks.NewMockTokenService()
	expiresAt := time.Now().Add(24 * time.Hour)
	tokenSvc.IssueFunc = func(user *domain.User, remember bool) (string, time.Time, error) {
		return "issued_token", expiresAt, nil
	}

	svc := newTestAuthService(userRepo, sessionRepo, tokenSvc, mocks.NewMockAuditLogger())
	result, err := svc.Login(context.Background(), domain.AuthRequest{Email: "admin@example.com", Password: "secret123"}, "10.0.0.1", "agent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("expected a session to be created")
	}
	if created.TokenHash != domain.HashToken("issued_token") {
		t.Error("session must be keyed by the issued token's hash")
	}
	if created.UserID != 1 {
		t.Errorf("expected session for user 1, got %d", created.UserID)
	}
	if !created.ExpiresAt.Equal(expiresAt) {
		t.Error("session expiry must mirror the token expiry")
	}
	if result.ExpiresAt != expiresAt {
		t.Error("result must carry the token expiry")
	}
}

func TestAuthServiceImpl_LoginRememberSelectsExtendedTTL(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return activeUser(), nil
	}

	var gotRemember bool
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.IssueFunc = func(user *domain.User, remember bool) (string, time.Time, error) {
		gotRemember = remember
		return "tok", time.Now().Add(720 * time.Hour), nil
	}

	svc := newTestAuthService(userRepo, mocks.NewMockSessionRepository(), tokenSvc, mocks.NewMockAuditLogger())
	_, err := svc.Login(context.Background(), domain.AuthRequest{Email: "admin@example.com", Password: "secret123", Remember: true}, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotRemember {
		t.Error("expected the remember flag to reach token issuance")
	}
}

func TestAuthServiceImpl_LoginSurvivesBookkeepingFailure(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return activeUser(), nil
	}
	userRepo.RecordLoginFunc = func(ctx context.Context, userID uint, at time.Time, ip string) error {
		return fmt.Errorf("stats table locked")
	}

	svc := newTestAuthService(userRepo, mocks.NewMockSessionRepository(), mocks.NewMockTokenService(), mocks.NewMockAuditLogger())
	result, err := svc.Login(context.Background(), domain.AuthRequest{Email: "admin@example.com", Password: "secret123"}, "", "")
	if err != nil {
		t.Fatalf("login must succeed despite bookkeeping failure, got %v", err)
	}
	if result == nil || result.Token == "" {
		t.Error("expected a usable login result")
	}
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	revoked := 0
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.RevokeFunc = func(ctx context.Context, userID uint, token string) error {
		revoked++
		return nil
	}

	audit := mocks.NewMockAuditLogger()
	svc := newTestAuthService(mocks.NewMockUserRepository(), sessionRepo, mocks.NewMockTokenService(), audit)

	if err := svc.Logout(context.Background(), 1, "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Second logout of the same token is still a success.
	if err := svc.Logout(context.Background(), 1, "tok"); err != nil {
		t.Fatalf("repeated logout must succeed: %v", err)
	}
	if revoked != 2 {
		t.Errorf("expected 2 revocations, got %d", revoked)
	}
	if !audit.HasEvent(domain.UserLogoutEvent) {
		t.Error("expected USER_LOGOUT audit event")
	}
}

func TestAuthServiceImpl_Authenticate(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockSessionRepository, *mocks.MockTokenService)
		expectedError error
		expectDegraded bool
	}{
		{
			name:       "valid token with live session",
			setupMocks: func(sessionRepo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {},
		},
		{
			name: "invalid token never reaches the store",
			setupMocks: func(sessionRepo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.VerifyFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenSignature
				}
				sessionRepo.IsLiveFunc = func(ctx context.Context, userID uint, token string) (bool, error) {
					panic("store must not be consulted for an invalid token")
				}
			},
			expectedError: domain.ErrTokenSignature,
		},
		{
			name: "revoked session beats valid signature",
			setupMocks: func(sessionRepo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				sessionRepo.IsLiveFunc = func(ctx context.Context, userID uint, token string) (bool, error) {
					return false, nil
				}
			},
			expectedError: domain.ErrSessionNotFound,
		},
		{
			name: "store outage fails closed",
			setupMocks: func(sessionRepo *mocks.MockSessionRepository, tokenSvc *mocks.MockTokenService) {
				sessionRepo.IsLiveFunc = func(ctx context.Context, userID uint, token string) (bool, error) {
					return false, domain.ErrSessionStoreUnavailable
				}
			},
			expectedError:  domain.ErrSessionStoreUnavailable,
			expectDegraded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := mocks.NewMockSessionRepository()
			tokenSvc := mocks.NewMockTokenService()
			audit := mocks.NewMockAuditLogger()
			tt.setupMocks(sessionRepo, tokenSvc)

			svc := newTestAuthService(mocks.NewMockUserRepository(), sessionRepo, tokenSvc, audit)
			claims, err := svc.Authenticate(context.Background(), "some_token")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if claims != nil {
					t.Error("expected nil claims on failure")
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if claims == nil || claims.UserID != 1 {
					t.Errorf("unexpected claims: %+v", claims)
				}
			}
			if tt.expectDegraded && !audit.HasEvent(domain.StoreDegradedEvent) {
				t.Error("expected SESSION_STORE_DEGRADED audit event")
			}
		})
	}
}

func TestAuthServiceImpl_AuthenticateAppliesTimeout(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.IsLiveFunc = func(ctx context.Context, userID uint, token string) (bool, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected a deadline on the store lookup context")
		}
		return true, nil
	}

	svc := newTestAuthService(mocks.NewMockUserRepository(), sessionRepo, mocks.NewMockTokenService(), mocks.NewMockAuditLogger())
	if _, err := svc.Authenticate(context.Background(), "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuthServiceImpl_RevocationBeatsReissuedLogin(t *testing.T) {
	// One user, two logins, one logout: only the revoked token's session
	// goes away. Simulated with an in-memory session map.
	sessions := map[string]bool{}
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
		sessions[session.TokenHash] = true
		return nil
	}
	sessionRepo.RevokeFunc = func(ctx context.Context, userID uint, token string) error {
		delete(sessions, domain.HashToken(token))
		return nil
	}
	sessionRepo.IsLiveFunc = func(ctx context.Context, userID uint, token string) (bool, error) {
		return sessions[domain.HashToken(token)], nil
	}

	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return activeUser(), nil
	}

	seq := 0
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.IssueFunc = func(user *domain.User, remember bool) (string, time.Time, error) {
		seq++
		return fmt.Sprintf("token_%d", seq), time.Now().Add(time.Hour), nil
	}

	svc := newTestAuthService(userRepo, sessionRepo, tokenSvc, mocks.NewMockAuditLogger())
	ctx := context.Background()
	req := domain.AuthRequest{Email: "admin@example.com", Password: "secret123"}

	first, err := svc.Login(ctx, req, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Login(ctx, req, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Logout(ctx, 1, first.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Authenticate(ctx, first.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected first session to be revoked, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, second.Token); err != nil {
		t.Errorf("expected second session to survive, got %v", err)
	}
}

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/you/profilecms/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo     domain.UserRepository
	sessionRepo  domain.SessionRepository
	passwordSvc  domain.PasswordService
	tokenSvc     domain.TokenService
	audit        domain.AuditLogger
	checkTimeout time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	audit domain.AuditLogger,
	checkTimeout time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		passwordSvc:  passwordSvc,
		tokenSvc:     tokenSvc,
		audit:        audit,
		checkTimeout: checkTimeout,
	}
}

// Login implements domain.AuthService. Unknown email and wrong password
// both come back as ErrInvalidCredentials; the account status is only
// revealed to a caller who already proved the password.
func (s *AuthServiceImpl) Login(ctx context.Context, req domain.AuthRequest, ip, userAgent string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.audit.LogEvent(domain.NewAuditEvent(domain.UserLoginFailureEvent, 0).
			WithEmail(req.Email).WithIP(ip).WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, req.Password) {
		s.audit.LogEvent(domain.NewAuditEvent(domain.UserLoginFailureEvent, user.ID).
			WithEmail(user.Email).WithIP(ip).WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	if user.Status != domain.UserStatusActive {
		s.audit.LogEvent(domain.NewAuditEvent(domain.UserLoginFailureEvent, user.ID).
			WithEmail(user.Email).WithIP(ip).WithError(domain.ErrUserInactive))
		return nil, domain.ErrUserInactive
	}

	token, expiresAt, err := s.tokenSvc.Issue(user, req.Remember)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	session := domain.NewSession(user.ID, token, ip, userAgent, expiresAt)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Login bookkeeping is best effort; a stats failure must not block login
	now := time.Now()
	if err := s.userRepo.RecordLogin(ctx, user.ID, now, ip); err != nil {
		log.Printf("LOGIN_BOOKKEEPING_FAILED: user_id=%d error=%v", user.ID, err)
	} else {
		user.LastLoginAt = &now
		user.LastLoginIP = ip
		user.LoginCount++
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.UserLoginEvent, user.ID).
		WithEmail(user.Email).WithIP(ip))

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout implements domain.AuthService. Revoking a session that no longer
// exists is still a success; logout is idempotent.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID uint, token string) error {
	if err := s.sessionRepo.Revoke(ctx, userID, token); err != nil {
		return err
	}
	s.audit.LogEvent(domain.NewAuditEvent(domain.UserLogoutEvent, userID))
	return nil
}

// Authenticate implements domain.AuthService. This is the strong path:
// the fast signature check plus a session-store liveness lookup, so a
// revoked session fails here even while its signature still verifies.
// The store lookup runs under a timeout and fails closed.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*domain.TokenClaims, error) {
	claims, err := s.tokenSvc.Verify(token)
	if err != nil {
		return nil, err
	}

	checkCtx, cancel := context.WithTimeout(ctx, s.checkTimeout)
	defer cancel()

	live, err := s.sessionRepo.IsLive(checkCtx, claims.UserID, token)
	if err != nil {
		s.audit.LogEvent(domain.NewAuditEvent(domain.StoreDegradedEvent, claims.UserID).WithError(err))
		return nil, err
	}
	if !live {
		return nil, domain.ErrSessionNotFound
	}

	return claims, nil
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

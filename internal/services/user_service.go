package services

import (
	"context"
	"fmt"

	"github.com/you/profilecms/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	audit       domain.AuditLogger
}

// NewUserService creates a new user administration service
func NewUserService(userRepo domain.UserRepository, passwordSvc domain.PasswordService, audit domain.AuditLogger) domain.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		audit:       audit,
	}
}

// Create implements domain.UserService
func (s *UserServiceImpl) Create(ctx context.Context, user *domain.User, password string) error {
	if existing, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil && existing != nil {
		return domain.ErrUserAlreadyExists
	}
	if existing, err := s.userRepo.FindByUsername(ctx, user.Username); err == nil && existing != nil {
		return domain.ErrUserAlreadyExists
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	if !user.Role.Valid() {
		user.Role = domain.RoleUser
	}
	if user.Status == "" {
		user.Status = domain.UserStatusActive
	}

	return s.userRepo.Create(ctx, user)
}

// List implements domain.UserService
func (s *UserServiceImpl) List(ctx context.Context, filter domain.ListFilter) ([]*domain.User, int64, error) {
	return s.userRepo.List(ctx, filter)
}

// Get implements domain.UserService
func (s *UserServiceImpl) Get(ctx context.Context, id uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// Update implements domain.UserService. A super admin editing their own
// account may not move themselves off the top role; the system must always
// keep its operator.
func (s *UserServiceImpl) Update(ctx context.Context, actor *domain.TokenClaims, user *domain.User) error {
	existing, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		return err
	}

	if actor != nil && actor.UserID == user.ID &&
		existing.Role == domain.RoleSuperAdmin && user.Role != domain.RoleSuperAdmin {
		s.audit.LogEvent(domain.NewAuditEvent(domain.SelfDemotionEvent, actor.UserID).
			WithEmail(existing.Email).WithError(domain.ErrSelfDemotion))
		return domain.ErrSelfDemotion
	}

	if !user.Role.Valid() {
		return domain.ErrUnknownRole
	}

	// Password changes go through ChangePassword, never through Update
	user.PasswordHash = existing.PasswordHash
	user.LastLoginAt = existing.LastLoginAt
	user.LastLoginIP = existing.LastLoginIP
	user.LoginCount = existing.LoginCount

	return s.userRepo.Update(ctx, user)
}

// ChangePassword implements domain.UserService
func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID uint, password string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	return s.userRepo.Update(ctx, user)
}

// Delete implements domain.UserService. Nobody deletes their own account
// through the admin surface.
func (s *UserServiceImpl) Delete(ctx context.Context, actor *domain.TokenClaims, id uint) error {
	if actor != nil && actor.UserID == id {
		return domain.ErrSelfDeletion
	}
	return s.userRepo.Delete(ctx, id)
}

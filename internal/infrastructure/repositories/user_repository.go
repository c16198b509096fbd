package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/you/profilecms/domain"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID            uint       `gorm:"primaryKey"`
	Email         string     `gorm:"uniqueIndex;size:255"`
	Username      string     `gorm:"uniqueIndex;size:64"`
	FullName      string     `gorm:"size:255"`
	Avatar        string     `gorm:"size:255"`
	PasswordHash  string     `gorm:"column:password"`
	Role          string     `gorm:"index;size:64"`
	Status        string     `gorm:"index;size:16"`
	EmailVerified bool       `gorm:"index"`
	LastLoginAt   *time.Time
	LastLoginIP   string `gorm:"size:64"`
	LoginCount    int64
	CreatedAt     time.Time      `gorm:"index"`
	UpdatedAt     time.Time      `gorm:"index"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByUsername implements domain.UserRepository
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// List implements domain.UserRepository
func (r *UserRepositoryImpl) List(ctx context.Context, filter domain.ListFilter) ([]*domain.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&DBUser{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("email LIKE ? OR username LIKE ? OR full_name LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbUsers []DBUser
	err := q.Order("id").Limit(filter.Limit()).Offset(filter.Offset()).Find(&dbUsers).Error
	if err != nil {
		return nil, 0, err
	}

	users := make([]*domain.User, len(dbUsers))
	for i := range dbUsers {
		users[i] = r.dbToDomain(&dbUsers[i])
	}
	return users, total, nil
}

// Update implements domain.UserRepository. The creation timestamp is
// owned by the row, not the caller; Save would overwrite it with the
// zero value otherwise.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	return r.db.WithContext(ctx).Omit("created_at").Save(dbUser).Error
}

// Delete implements domain.UserRepository
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBUser{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// RecordLogin implements domain.UserRepository. Updates the login
// bookkeeping fields in one statement.
func (r *UserRepositoryImpl) RecordLogin(ctx context.Context, userID uint, at time.Time, ip string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"last_login_at": at,
		"last_login_ip": ip,
		"login_count":   gorm.Expr("login_count + 1"),
	}).Error
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:            user.ID,
		Email:         user.Email,
		Username:      user.Username,
		FullName:      user.FullName,
		Avatar:        user.Avatar,
		PasswordHash:  user.PasswordHash,
		Role:          string(user.Role),
		Status:        string(user.Status),
		EmailVerified: user.EmailVerified,
		LastLoginAt:   user.LastLoginAt,
		LastLoginIP:   user.LastLoginIP,
		LoginCount:    user.LoginCount,
	}
}

// dbToDomain converts database user to domain user. Roles are normalized
// here so legacy rows with odd casing never leak past the repository.
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	role, err := domain.ParseRole(dbUser.Role)
	if err != nil {
		role = domain.RoleUser
	}
	return &domain.User{
		ID:            dbUser.ID,
		Email:         dbUser.Email,
		Username:      dbUser.Username,
		FullName:      dbUser.FullName,
		Avatar:        dbUser.Avatar,
		PasswordHash:  dbUser.PasswordHash,
		Role:          role,
		Status:        domain.UserStatus(dbUser.Status),
		EmailVerified: dbUser.EmailVerified,
		LastLoginAt:   dbUser.LastLoginAt,
		LastLoginIP:   dbUser.LastLoginIP,
		LoginCount:    dbUser.LoginCount,
		CreatedAt:     dbUser.CreatedAt,
		UpdatedAt:     dbUser.UpdatedAt,
	}
}

package domain

import (
	"context"
	"io"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	RecordLogin(ctx context.Context, userID uint, at time.Time, ip string) error
}

// SessionRepository defines session data access operations.
// Sessions are keyed by (user id, token) so a forged token value alone can
// never match another user's session.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Revoke(ctx context.Context, userID uint, token string) error
	IsLive(ctx context.Context, userID uint, token string) (bool, error)
}

// TokenService defines session-token operations. Verify is the fast path:
// signature and embedded expiry only, no store lookup.
type TokenService interface {
	Issue(user *User, remember bool) (string, time.Time, error)
	Verify(token string) (*TokenClaims, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// AuthService defines authentication business logic. Authenticate is the
// strong path: token verification plus a session-store liveness check.
type AuthService interface {
	Login(ctx context.Context, req AuthRequest, ip, userAgent string) (*AuthResult, error)
	Logout(ctx context.Context, userID uint, token string) error
	Authenticate(ctx context.Context, token string) (*TokenClaims, error)
	Profile(ctx context.Context, userID uint) (*User, error)
}

// UserService defines account administration operations
type UserService interface {
	Create(ctx context.Context, user *User, password string) error
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	Get(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, actor *TokenClaims, user *User) error
	ChangePassword(ctx context.Context, userID uint, password string) error
	Delete(ctx context.Context, actor *TokenClaims, id uint) error
}

// ArticleRepository defines article data access operations
type ArticleRepository interface {
	Create(ctx context.Context, article *Article) error
	FindByID(ctx context.Context, id uint) (*Article, error)
	FindBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context, filter ListFilter, publishedOnly bool) ([]*Article, int64, error)
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
}

// EventRepository defines event and registration data access operations
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	FindByID(ctx context.Context, id uint) (*Event, error)
	FindBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, filter ListFilter, publishedOnly bool) ([]*Event, int64, error)
	ListUpcoming(ctx context.Context, filter ListFilter) ([]*Event, int64, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uint) error

	CreateRegistration(ctx context.Context, reg *EventRegistration) error
	CountRegistrations(ctx context.Context, eventID uint) (int64, error)
	FindRegistration(ctx context.Context, eventID uint, email string) (*EventRegistration, error)
	ListRegistrations(ctx context.Context, eventID uint, filter ListFilter) ([]*EventRegistration, int64, error)
}

// GalleryRepository defines gallery data access operations
type GalleryRepository interface {
	Create(ctx context.Context, photo *GalleryPhoto) error
	FindByID(ctx context.Context, id uint) (*GalleryPhoto, error)
	List(ctx context.Context, filter ListFilter) ([]*GalleryPhoto, int64, error)
	Update(ctx context.Context, photo *GalleryPhoto) error
	Delete(ctx context.Context, id uint) error
}

// ContactRepository defines contact message data access operations
type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	FindByID(ctx context.Context, id uint) (*ContactMessage, error)
	List(ctx context.Context, filter ListFilter) ([]*ContactMessage, int64, error)
	MarkRead(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

// ArticleService defines article business logic
type ArticleService interface {
	Create(ctx context.Context, article *Article) error
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	Get(ctx context.Context, id uint) (*Article, error)
	ListPublished(ctx context.Context, filter ListFilter) ([]*Article, int64, error)
	ListAll(ctx context.Context, filter ListFilter) ([]*Article, int64, error)
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, id uint) error
}

// EventService defines event business logic
type EventService interface {
	Create(ctx context.Context, event *Event) error
	Get(ctx context.Context, id uint) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	ListUpcoming(ctx context.Context, filter ListFilter) ([]*Event, int64, error)
	ListAll(ctx context.Context, filter ListFilter) ([]*Event, int64, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uint) error
	Register(ctx context.Context, eventID uint, reg *EventRegistration) error
	Registrations(ctx context.Context, eventID uint, filter ListFilter) ([]*EventRegistration, int64, error)
}

// GalleryService defines gallery business logic
type GalleryService interface {
	Add(ctx context.Context, photo *GalleryPhoto, file io.Reader, filename string, size int64) error
	List(ctx context.Context, filter ListFilter) ([]*GalleryPhoto, int64, error)
	Update(ctx context.Context, photo *GalleryPhoto) error
	Remove(ctx context.Context, id uint) error
}

// ContactService defines contact-form business logic
type ContactService interface {
	Submit(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context, filter ListFilter) ([]*ContactMessage, int64, error)
	MarkRead(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

// StorageService defines uploaded-file storage operations
type StorageService interface {
	Save(ctx context.Context, file io.Reader, filename string, size int64) (string, error)
	Remove(ctx context.Context, path string) error
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}

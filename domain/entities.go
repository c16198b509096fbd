package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// UserStatus enumerates account states. Only active accounts may log in.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusDisabled UserStatus = "disabled"
)

// User represents an account in the system
type User struct {
	ID            uint
	Email         string
	Username      string
	FullName      string
	Avatar        string
	PasswordHash  string `gorm:"column:password"`
	Role          Role
	Status        UserStatus
	EmailVerified bool
	LastLoginAt   *time.Time
	LastLoginIP   string
	LoginCount    int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AuthRequest represents login credentials
type AuthRequest struct {
	Email    string
	Password string
	Remember bool
}

// AuthResult represents a successful login
type AuthResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// Session is the durable record that a given token is still live.
// Only the token's hash is stored, never the token itself.
type Session struct {
	UserID    uint
	TokenHash string
	IP        string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewSession builds a session record for a freshly issued token
func NewSession(userID uint, token, ip, userAgent string, expiresAt time.Time) *Session {
	return &Session{
		UserID:    userID,
		TokenHash: HashToken(token),
		IP:        ip,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
}

// HashToken returns the hex SHA-256 of a token. The raw token never
// reaches the session store.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// TokenClaims represents the verified payload of a session token
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      Role   `json:"role"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Article represents a news article, draft or published
type Article struct {
	ID          uint
	Slug        string
	Title       string
	Excerpt     string
	Body        string
	CoverImage  string
	AuthorID    uint
	Published   bool
	PublishedAt *time.Time
	ViewCount   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Event represents a company event open for registration
type Event struct {
	ID          uint
	Slug        string
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	Capacity    int
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventRegistration represents one attendee signup for an event
type EventRegistration struct {
	ID        uint
	EventID   uint
	Code      string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// GalleryPhoto represents one image in the photo gallery
type GalleryPhoto struct {
	ID        uint
	Title     string
	Caption   string
	FilePath  string
	SortOrder int
	CreatedAt time.Time
}

// ContactMessage represents a contact-form submission
type ContactMessage struct {
	ID        uint
	Name      string
	Email     string
	Subject   string
	Message   string
	Read      bool
	CreatedAt time.Time
}

// ListFilter carries pagination and search parameters for list queries
type ListFilter struct {
	Page    int
	PerPage int
	Search  string
}

// Limit returns the page size, clamped to a sane range
func (f ListFilter) Limit() int {
	if f.PerPage < 1 {
		return 10
	}
	if f.PerPage > 100 {
		return 100
	}
	return f.PerPage
}

// Offset returns the row offset for the current page
func (f ListFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit()
}

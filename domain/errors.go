package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserInactive       = errors.New("user account is not active")
)

// Token errors
var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenExpired   = errors.New("token has expired")
)

// Session errors
var (
	ErrSessionNotFound         = errors.New("session not found")
	ErrSessionStoreUnavailable = errors.New("session store unavailable")
)

// Authorization errors
var (
	ErrForbidden    = errors.New("insufficient role permissions")
	ErrUnknownRole  = errors.New("unknown role")
	ErrSelfDemotion = errors.New("super admin cannot change their own role")
	ErrSelfDeletion = errors.New("super admin cannot delete their own account")
)

// Content errors
var (
	ErrArticleNotFound   = errors.New("article not found")
	ErrSlugTaken         = errors.New("slug already in use")
	ErrEventNotFound     = errors.New("event not found")
	ErrEventFull         = errors.New("event is at capacity")
	ErrAlreadyRegistered = errors.New("email already registered for event")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrPhotoNotFound     = errors.New("photo not found")
	ErrMessageNotFound   = errors.New("message not found")
)

// Upload errors
var (
	ErrUploadTooLarge    = errors.New("upload exceeds size limit")
	ErrUploadType        = errors.New("upload file type not allowed")
)

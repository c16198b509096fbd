package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/you/profilecms/domain"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey   []byte
	issuer      string
	shortTTL    time.Duration
	extendedTTL time.Duration
}

// NewJWTService creates a new JWT service. The secret is fixed at
// construction; nothing reads it from the environment afterwards.
func NewJWTService(secretKey, issuer string, shortTTL, extendedTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:   []byte(secretKey),
		issuer:      issuer,
		shortTTL:    shortTTL,
		extendedTTL: extendedTTL,
	}
}

// generateJTI creates a unique JWT ID
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// Issue implements domain.TokenService. The remember flag selects the
// extended lifetime.
func (j *JWTServiceImpl) Issue(user *domain.User, remember bool) (string, time.Time, error) {
	ttl := j.shortTTL
	if remember {
		ttl = j.extendedTTL
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"email":   user.Email,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
		"jti":     j.generateJTI(), // Unique JWT ID ensures token uniqueness
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify implements domain.TokenService. This is the fast path: signature
// and embedded expiry only, no store lookup. All failures come back as one
// of the domain token errors; attacker-controlled input never panics.
func (j *JWTServiceImpl) Verify(tokenString string) (*domain.TokenClaims, error) {
	// Decode without the signature first so an expired token reports
	// expiry even when its signature segment was also tampered with.
	unverified, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	claims, err := extractClaims(unverified)
	if err != nil {
		return nil, err
	}

	if time.Unix(claims.ExpiresAt, 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenSignature
		}
	}

	return claims, nil
}

// extractClaims maps the untyped claim bag to the explicit claims struct.
// Any missing or wrongly-typed required field rejects the token as malformed.
func extractClaims(token *jwt.Token) (*domain.TokenClaims, error) {
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	roleStr, ok := mapClaims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := mapClaims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.TokenClaims{
		UserID:    uint(userID),
		Role:      role,
		Email:     email,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/profilecms/domain"
	"github.com/you/profilecms/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc      domain.AuthService
	cookieName   string
	cookieDomain string
	cookieSecure bool
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, cookieName, cookieDomain string, cookieSecure bool) *AuthHandlers {
	return &AuthHandlers{
		authSvc:      authSvc,
		cookieName:   cookieName,
		cookieDomain: cookieDomain,
		cookieSecure: cookieSecure,
	}
}

// LoginRequest represents login request
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

func userPayload(user *domain.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
		"username": user.Username,
		"avatar":   user.Avatar,
		"role":     user.Role,
	}
}

// Login handles user login. Credential failures come back as one generic
// message; nothing here reveals whether the email exists.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), domain.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
		Remember: req.RememberMe,
	}, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case errors.Is(err, domain.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	// Cookie lifetime tracks the token's own expiry
	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookieName, result.Token, maxAge, "/", h.cookieDomain, h.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"token": result.Token,
			"user":  userPayload(result.User),
		},
	})
}

// Logout handles user logout. The route sits behind the fast-path gate
// only: a token whose session is already gone must still log out cleanly.
func (h *AuthHandlers) Logout(c *gin.Context) {
	userIDStr, _ := c.Get(middleware.CtxUserID)
	token, _ := c.Get(middleware.CtxToken)

	userID, err := strconv.ParseUint(userIDStr.(string), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), uint(userID), token.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	middleware.ClearSessionCookie(c, h.cookieName, h.cookieDomain, h.cookieSecure)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Logged out successfully",
		},
	})
}

// Me reports who the caller is. It runs the strong path itself so the
// unauthenticated shape is this endpoint's own, not the gate's.
func (h *AuthHandlers) Me(c *gin.Context) {
	token := middleware.ExtractToken(c, h.cookieName)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	claims, err := h.authSvc.Authenticate(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	user, err := h.authSvc.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          userPayload(user),
	})
}

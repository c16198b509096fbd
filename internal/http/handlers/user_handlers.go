package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/profilecms/domain"
	"github.com/you/profilecms/internal/http/middleware"
)

// UserHandlers handles user administration HTTP requests
type UserHandlers struct {
	userSvc domain.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc}
}

// UserRequest represents a user create/update request
type UserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Password string `json:"password,omitempty"`
}

// actorClaims rebuilds the verified identity the gate attached
func actorClaims(c *gin.Context) *domain.TokenClaims {
	idStr, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return nil
	}
	id, err := strconv.ParseUint(idStr.(string), 10, 32)
	if err != nil {
		return nil
	}
	role, _ := c.Get(middleware.CtxUserRole)
	email, _ := c.Get(middleware.CtxUserEmail)
	return &domain.TokenClaims{
		UserID: uint(id),
		Role:   domain.Role(role.(string)),
		Email:  email.(string),
	}
}

func adminUserPayload(user *domain.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"email":         user.Email,
		"username":      user.Username,
		"fullName":      user.FullName,
		"avatar":        user.Avatar,
		"role":          user.Role,
		"status":        user.Status,
		"emailVerified": user.EmailVerified,
		"lastLoginAt":   user.LastLoginAt,
		"lastLoginIp":   user.LastLoginIP,
		"loginCount":    user.LoginCount,
		"createdAt":     user.CreatedAt,
		"updatedAt":     user.UpdatedAt,
	}
}

// List handles the admin user listing
func (h *UserHandlers) List(c *gin.Context) {
	filter := listFilter(c)
	users, total, err := h.userSvc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	payload := make([]gin.H, len(users))
	for i, user := range users {
		payload[i] = adminUserPayload(user)
	}
	c.JSON(http.StatusOK, gin.H{"data": payload, "meta": listMeta(filter, total)})
}

// Get handles the admin user detail view
func (h *UserHandlers) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userSvc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": adminUserPayload(user)})
}

// Create handles admin user creation
func (h *UserHandlers) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		role = domain.RoleUser
	}

	user := &domain.User{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Avatar:   req.Avatar,
		Role:     role,
		Status:   domain.UserStatus(req.Status),
	}

	if err := h.userSvc.Create(c.Request.Context(), user, req.Password); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": adminUserPayload(user)})
}

// Update handles admin user updates. The self-demotion guard lives in the
// service; this handler only maps its verdicts to status codes.
func (h *UserHandlers) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	user := &domain.User{
		ID:       uint(id),
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Avatar:   req.Avatar,
		Role:     role,
		Status:   domain.UserStatus(req.Status),
	}

	if err := h.userSvc.Update(c.Request.Context(), actorClaims(c), user); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrSelfDemotion):
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot change your own role"})
		case errors.Is(err, domain.ErrUnknownRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		}
		return
	}

	if req.Password != "" {
		if err := h.userSvc.ChangePassword(c.Request.Context(), uint(id), req.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": adminUserPayload(user)})
}

// Delete handles admin user deletion
func (h *UserHandlers) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), actorClaims(c), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrSelfDeletion):
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete your own account"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

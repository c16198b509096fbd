package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/profilecms/domain"
)

// ContactHandlers handles contact-form HTTP requests
type ContactHandlers struct {
	contactSvc domain.ContactService
}

// NewContactHandlers creates new contact handlers
func NewContactHandlers(contactSvc domain.ContactService) *ContactHandlers {
	return &ContactHandlers{contactSvc: contactSvc}
}

// ContactRequest represents a contact-form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submit handles a public contact-form submission
func (h *ContactHandlers) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactSvc.Submit(c.Request.Context(), msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "Thank you, we will get back to you shortly.",
		},
	})
}

// List handles the admin message listing
func (h *ContactHandlers) List(c *gin.Context) {
	filter := listFilter(c)
	msgs, total, err := h.contactSvc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": msgs, "meta": listMeta(filter, total)})
}

// MarkRead handles marking a message as read
func (h *ContactHandlers) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	if err := h.contactSvc.MarkRead(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles admin message deletion
func (h *ContactHandlers) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	if err := h.contactSvc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	c.Status(http.StatusNoContent)
}

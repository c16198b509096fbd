package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/profilecms/domain"
)

// EventHandlers handles event HTTP requests
type EventHandlers struct {
	eventSvc domain.EventService
}

// NewEventHandlers creates new event handlers
func NewEventHandlers(eventSvc domain.EventService) *EventHandlers {
	return &EventHandlers{eventSvc: eventSvc}
}

// EventRequest represents an event create/update request
type EventRequest struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	EndsAt      time.Time `json:"endsAt" binding:"required"`
	Capacity    int       `json:"capacity"`
	Published   bool      `json:"published"`
}

// RegisterRequest represents an event registration request
type RegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// ListUpcoming handles the public upcoming-events listing
func (h *EventHandlers) ListUpcoming(c *gin.Context) {
	filter := listFilter(c)
	events, total, err := h.eventSvc.ListUpcoming(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": events, "meta": listMeta(filter, total)})
}

// GetBySlug handles the public event detail view
func (h *EventHandlers) GetBySlug(c *gin.Context) {
	event, err := h.eventSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": event})
}

// Register handles a public event registration
func (h *EventHandlers) Register(c *gin.Context) {
	event, err := h.eventSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get event"})
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg := &domain.EventRegistration{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := h.eventSvc.Register(c.Request.Context(), event.ID, reg); err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, domain.ErrEventFull):
			c.JSON(http.StatusConflict, gin.H{"error": "Event is at capacity"})
		case errors.Is(err, domain.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered for this event"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"code":    reg.Code,
			"eventId": reg.EventID,
		},
	})
}

// ListAll handles the admin event listing, unpublished included
func (h *EventHandlers) ListAll(c *gin.Context) {
	filter := listFilter(c)
	events, total, err := h.eventSvc.ListAll(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": events, "meta": listMeta(filter, total)})
}

// Get handles the admin event detail view
func (h *EventHandlers) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	event, err := h.eventSvc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": event})
}

// Create handles admin event creation
func (h *EventHandlers) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := eventFromRequest(0, &req)
	if err := h.eventSvc.Create(c.Request.Context(), event); err != nil {
		if errors.Is(err, domain.ErrSlugTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": event})
}

// Update handles admin event updates
func (h *EventHandlers) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := eventFromRequest(uint(id), &req)
	if err := h.eventSvc.Update(c.Request.Context(), event); err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, domain.ErrSlugTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": event})
}

// Delete handles admin event deletion
func (h *EventHandlers) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Registrations handles the admin registration listing for one event
func (h *EventHandlers) Registrations(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	filter := listFilter(c)
	regs, total, err := h.eventSvc.Registrations(c.Request.Context(), uint(id), filter)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list registrations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": regs, "meta": listMeta(filter, total)})
}

func eventFromRequest(id uint, req *EventRequest) *domain.Event {
	return &domain.Event{
		ID:          id,
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Capacity:    req.Capacity,
		Published:   req.Published,
	}
}

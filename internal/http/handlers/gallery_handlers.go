package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/profilecms/domain"
)

// GalleryHandlers handles gallery HTTP requests
type GalleryHandlers struct {
	gallerySvc domain.GalleryService
}

// NewGalleryHandlers creates new gallery handlers
func NewGalleryHandlers(gallerySvc domain.GalleryService) *GalleryHandlers {
	return &GalleryHandlers{gallerySvc: gallerySvc}
}

// List handles the public gallery listing
func (h *GalleryHandlers) List(c *gin.Context) {
	filter := listFilter(c)
	photos, total, err := h.gallerySvc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list photos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": photos, "meta": listMeta(filter, total)})
}

// Upload handles an admin photo upload (multipart form: file, title,
// caption, sortOrder)
func (h *GalleryHandlers) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	sortOrder, _ := strconv.Atoi(c.PostForm("sortOrder"))
	photo := &domain.GalleryPhoto{
		Title:     c.PostForm("title"),
		Caption:   c.PostForm("caption"),
		SortOrder: sortOrder,
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	if err := h.gallerySvc.Add(c.Request.Context(), photo, file, fileHeader.Filename, fileHeader.Size); err != nil {
		switch {
		case errors.Is(err, domain.ErrUploadTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		case errors.Is(err, domain.ErrUploadType):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "File type not allowed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": photo})
}

// Update handles admin photo metadata updates
func (h *GalleryHandlers) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo ID"})
		return
	}

	var req struct {
		Title     string `json:"title"`
		Caption   string `json:"caption"`
		SortOrder int    `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo := &domain.GalleryPhoto{
		ID:        uint(id),
		Title:     req.Title,
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
	}

	if err := h.gallerySvc.Update(c.Request.Context(), photo); err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": photo})
}

// Delete handles admin photo deletion
func (h *GalleryHandlers) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo ID"})
		return
	}

	if err := h.gallerySvc.Remove(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}
	c.Status(http.StatusNoContent)
}

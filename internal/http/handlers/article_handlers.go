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

// ArticleHandlers handles article HTTP requests
type ArticleHandlers struct {
	articleSvc domain.ArticleService
}

// NewArticleHandlers creates new article handlers
func NewArticleHandlers(articleSvc domain.ArticleService) *ArticleHandlers {
	return &ArticleHandlers{articleSvc: articleSvc}
}

// ArticleRequest represents an article create/update request
type ArticleRequest struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title" binding:"required"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body" binding:"required"`
	CoverImage  string     `json:"coverImage"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
}

func listFilter(c *gin.Context) domain.ListFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "10"))
	return domain.ListFilter{
		Page:    page,
		PerPage: perPage,
		Search:  c.Query("q"),
	}
}

func listMeta(filter domain.ListFilter, total int64) gin.H {
	return gin.H{
		"page":    filter.Page,
		"perPage": filter.Limit(),
		"total":   total,
	}
}

// ListPublished handles the public article listing
func (h *ArticleHandlers) ListPublished(c *gin.Context) {
	filter := listFilter(c)
	articles, total, err := h.articleSvc.ListPublished(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": articles, "meta": listMeta(filter, total)})
}

// GetBySlug handles the public article detail view
func (h *ArticleHandlers) GetBySlug(c *gin.Context) {
	article, err := h.articleSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": article})
}

// ListAll handles the admin article listing, drafts included
func (h *ArticleHandlers) ListAll(c *gin.Context) {
	filter := listFilter(c)
	articles, total, err := h.articleSvc.ListAll(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": articles, "meta": listMeta(filter, total)})
}

// Get handles the admin article detail view
func (h *ArticleHandlers) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	article, err := h.articleSvc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": article})
}

// Create handles admin article creation
func (h *ArticleHandlers) Create(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorIDStr, _ := c.Get(middleware.CtxUserID)
	authorID, _ := strconv.ParseUint(authorIDStr.(string), 10, 32)

	article := &domain.Article{
		Slug:        req.Slug,
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Body:        req.Body,
		CoverImage:  req.CoverImage,
		AuthorID:    uint(authorID),
		Published:   req.Published,
		PublishedAt: req.PublishedAt,
	}

	if err := h.articleSvc.Create(c.Request.Context(), article); err != nil {
		if errors.Is(err, domain.ErrSlugTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": article})
}

// Update handles admin article updates
func (h *ArticleHandlers) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorIDStr, _ := c.Get(middleware.CtxUserID)
	authorID, _ := strconv.ParseUint(authorIDStr.(string), 10, 32)

	article := &domain.Article{
		ID:          uint(id),
		Slug:        req.Slug,
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Body:        req.Body,
		CoverImage:  req.CoverImage,
		AuthorID:    uint(authorID),
		Published:   req.Published,
		PublishedAt: req.PublishedAt,
	}

	if err := h.articleSvc.Update(c.Request.Context(), article); err != nil {
		switch {
		case errors.Is(err, domain.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		case errors.Is(err, domain.ErrSlugTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": article})
}

// Delete handles admin article deletion
func (h *ArticleHandlers) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	if err := h.articleSvc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	c.Status(http.StatusNoContent)
}

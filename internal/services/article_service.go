package services

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/you/profilecms/domain"
)

// ArticleServiceImpl implements domain.ArticleService
type ArticleServiceImpl struct {
	articleRepo domain.ArticleRepository
	audit       domain.AuditLogger
}

// NewArticleService creates a new article service
func NewArticleService(articleRepo domain.ArticleRepository, audit domain.AuditLogger) domain.ArticleService {
	return &ArticleServiceImpl{articleRepo: articleRepo, audit: audit}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL-safe slug
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Create implements domain.ArticleService
func (s *ArticleServiceImpl) Create(ctx context.Context, article *domain.Article) error {
	if article.Slug == "" {
		article.Slug = Slugify(article.Title)
	}

	if existing, err := s.articleRepo.FindBySlug(ctx, article.Slug); err == nil && existing != nil {
		return domain.ErrSlugTaken
	}

	if article.Published && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return err
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.ContentChangedEvent, article.AuthorID).
		WithResource("article:" + article.Slug))
	return nil
}

// GetBySlug implements domain.ArticleService. Only published articles are
// visible on the public surface; the view counter bumps best effort.
func (s *ArticleServiceImpl) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := s.articleRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !article.Published {
		return nil, domain.ErrArticleNotFound
	}

	if err := s.articleRepo.IncrementViews(ctx, article.ID); err != nil {
		log.Printf("VIEW_COUNT_FAILED: article_id=%d error=%v", article.ID, err)
	} else {
		article.ViewCount++
	}

	return article, nil
}

// Get implements domain.ArticleService
func (s *ArticleServiceImpl) Get(ctx context.Context, id uint) (*domain.Article, error) {
	return s.articleRepo.FindByID(ctx, id)
}

// ListPublished implements domain.ArticleService
func (s *ArticleServiceImpl) ListPublished(ctx context.Context, filter domain.ListFilter) ([]*domain.Article, int64, error) {
	return s.articleRepo.List(ctx, filter, true)
}

// ListAll implements domain.ArticleService
func (s *ArticleServiceImpl) ListAll(ctx context.Context, filter domain.ListFilter) ([]*domain.Article, int64, error) {
	return s.articleRepo.List(ctx, filter, false)
}

// Update implements domain.ArticleService
func (s *ArticleServiceImpl) Update(ctx context.Context, article *domain.Article) error {
	existing, err := s.articleRepo.FindByID(ctx, article.ID)
	if err != nil {
		return err
	}

	if article.Slug == "" {
		article.Slug = existing.Slug
	}
	if article.Slug != existing.Slug {
		if other, err := s.articleRepo.FindBySlug(ctx, article.Slug); err == nil && other != nil {
			return domain.ErrSlugTaken
		} else if err != nil && !errors.Is(err, domain.ErrArticleNotFound) {
			return err
		}
	}

	// First transition to published stamps the publication time
	if article.Published && existing.PublishedAt == nil && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	} else if article.PublishedAt == nil {
		article.PublishedAt = existing.PublishedAt
	}
	article.ViewCount = existing.ViewCount

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return err
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.ContentChangedEvent, article.AuthorID).
		WithResource("article:" + article.Slug))
	return nil
}

// Delete implements domain.ArticleService
func (s *ArticleServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.articleRepo.Delete(ctx, id)
}

package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/you/profilecms/domain"
	"gorm.io/gorm"
)

// ArticleRepositoryImpl implements domain.ArticleRepository using GORM
type ArticleRepositoryImpl struct {
	db *gorm.DB
}

// DBArticle represents the database model for Article
type DBArticle struct {
	ID          uint   `gorm:"primaryKey"`
	Slug        string `gorm:"uniqueIndex;size:255"`
	Title       string `gorm:"size:255"`
	Excerpt     string `gorm:"size:512"`
	Body        string `gorm:"type:text"`
	CoverImage  string `gorm:"size:255"`
	AuthorID    uint   `gorm:"index"`
	Published   bool   `gorm:"index"`
	PublishedAt *time.Time
	ViewCount   int64
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBArticle) TableName() string {
	return "articles"
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) domain.ArticleRepository {
	return &ArticleRepositoryImpl{db: db}
}

// Create implements domain.ArticleRepository
func (r *ArticleRepositoryImpl) Create(ctx context.Context, article *domain.Article) error {
	dbArticle := articleToDB(article)
	if err := r.db.WithContext(ctx).Create(dbArticle).Error; err != nil {
		return err
	}
	article.ID = dbArticle.ID
	return nil
}

// FindByID implements domain.ArticleRepository
func (r *ArticleRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Article, error) {
	var dbArticle DBArticle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbArticle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return articleToDomain(&dbArticle), nil
}

// FindBySlug implements domain.ArticleRepository
func (r *ArticleRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var dbArticle DBArticle
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&dbArticle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return articleToDomain(&dbArticle), nil
}

// List implements domain.ArticleRepository
func (r *ArticleRepositoryImpl) List(ctx context.Context, filter domain.ListFilter, publishedOnly bool) ([]*domain.Article, int64, error) {
	q := r.db.WithContext(ctx).Model(&DBArticle{})
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	if filter.Search != "" {
		q = q.Where("title LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbArticles []DBArticle
	err := q.Order("created_at DESC").Limit(filter.Limit()).Offset(filter.Offset()).Find(&dbArticles).Error
	if err != nil {
		return nil, 0, err
	}

	articles := make([]*domain.Article, len(dbArticles))
	for i := range dbArticles {
		articles[i] = articleToDomain(&dbArticles[i])
	}
	return articles, total, nil
}

// Update implements domain.ArticleRepository. created_at stays the
// row's own.
func (r *ArticleRepositoryImpl) Update(ctx context.Context, article *domain.Article) error {
	return r.db.WithContext(ctx).Omit("created_at").Save(articleToDB(article)).Error
}

// Delete implements domain.ArticleRepository
func (r *ArticleRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBArticle{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// IncrementViews implements domain.ArticleRepository
func (r *ArticleRepositoryImpl) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&DBArticle{}).Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

func articleToDB(a *domain.Article) *DBArticle {
	return &DBArticle{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		Body:        a.Body,
		CoverImage:  a.CoverImage,
		AuthorID:    a.AuthorID,
		Published:   a.Published,
		PublishedAt: a.PublishedAt,
		ViewCount:   a.ViewCount,
	}
}

func articleToDomain(a *DBArticle) *domain.Article {
	return &domain.Article{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		Body:        a.Body,
		CoverImage:  a.CoverImage,
		AuthorID:    a.AuthorID,
		Published:   a.Published,
		PublishedAt: a.PublishedAt,
		ViewCount:   a.ViewCount,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

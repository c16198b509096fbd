package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/you/profilecms/domain"
	"gorm.io/gorm"
)

// GalleryRepositoryImpl implements domain.GalleryRepository using GORM
type GalleryRepositoryImpl struct {
	db *gorm.DB
}

// DBGalleryPhoto represents the database model for GalleryPhoto
type DBGalleryPhoto struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255"`
	Caption   string `gorm:"size:512"`
	FilePath  string `gorm:"size:255"`
	SortOrder int    `gorm:"index"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBGalleryPhoto) TableName() string {
	return "gallery_photos"
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *gorm.DB) domain.GalleryRepository {
	return &GalleryRepositoryImpl{db: db}
}

// Create implements domain.GalleryRepository
func (r *GalleryRepositoryImpl) Create(ctx context.Context, photo *domain.GalleryPhoto) error {
	dbPhoto := photoToDB(photo)
	if err := r.db.WithContext(ctx).Create(dbPhoto).Error; err != nil {
		return err
	}
	photo.ID = dbPhoto.ID
	return nil
}

// FindByID implements domain.GalleryRepository
func (r *GalleryRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.GalleryPhoto, error) {
	var dbPhoto DBGalleryPhoto
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbPhoto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, err
	}
	return photoToDomain(&dbPhoto), nil
}

// List implements domain.GalleryRepository
func (r *GalleryRepositoryImpl) List(ctx context.Context, filter domain.ListFilter) ([]*domain.GalleryPhoto, int64, error) {
	q := r.db.WithContext(ctx).Model(&DBGalleryPhoto{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbPhotos []DBGalleryPhoto
	err := q.Order("sort_order ASC, id ASC").Limit(filter.Limit()).Offset(filter.Offset()).Find(&dbPhotos).Error
	if err != nil {
		return nil, 0, err
	}

	photos := make([]*domain.GalleryPhoto, len(dbPhotos))
	for i := range dbPhotos {
		photos[i] = photoToDomain(&dbPhotos[i])
	}
	return photos, total, nil
}

// Update implements domain.GalleryRepository
func (r *GalleryRepositoryImpl) Update(ctx context.Context, photo *domain.GalleryPhoto) error {
	// created_at stays the row's own
	return r.db.WithContext(ctx).Omit("created_at").Save(photoToDB(photo)).Error
}

// Delete implements domain.GalleryRepository
func (r *GalleryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBGalleryPhoto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func photoToDB(p *domain.GalleryPhoto) *DBGalleryPhoto {
	return &DBGalleryPhoto{
		ID:        p.ID,
		Title:     p.Title,
		Caption:   p.Caption,
		FilePath:  p.FilePath,
		SortOrder: p.SortOrder,
	}
}

func photoToDomain(p *DBGalleryPhoto) *domain.GalleryPhoto {
	return &domain.GalleryPhoto{
		ID:        p.ID,
		Title:     p.Title,
		Caption:   p.Caption,
		FilePath:  p.FilePath,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
	}
}

package services

import (
	"context"
	"io"
	"log"

	"github.com/you/profilecms/domain"
)

// GalleryServiceImpl implements domain.GalleryService
type GalleryServiceImpl struct {
	galleryRepo domain.GalleryRepository
	storage     domain.StorageService
}

// NewGalleryService creates a new gallery service
func NewGalleryService(galleryRepo domain.GalleryRepository, storage domain.StorageService) domain.GalleryService {
	return &GalleryServiceImpl{galleryRepo: galleryRepo, storage: storage}
}

// Add implements domain.GalleryService. The file lands in storage first;
// if the database insert fails the stored file is cleaned up again.
func (s *GalleryServiceImpl) Add(ctx context.Context, photo *domain.GalleryPhoto, file io.Reader, filename string, size int64) error {
	path, err := s.storage.Save(ctx, file, filename, size)
	if err != nil {
		return err
	}
	photo.FilePath = path

	if err := s.galleryRepo.Create(ctx, photo); err != nil {
		if rmErr := s.storage.Remove(ctx, path); rmErr != nil {
			log.Printf("UPLOAD_ORPHAN: path=%s error=%v", path, rmErr)
		}
		return err
	}
	return nil
}

// List implements domain.GalleryService
func (s *GalleryServiceImpl) List(ctx context.Context, filter domain.ListFilter) ([]*domain.GalleryPhoto, int64, error) {
	return s.galleryRepo.List(ctx, filter)
}

// Update implements domain.GalleryService. Only metadata changes here;
// the stored file stays as uploaded.
func (s *GalleryServiceImpl) Update(ctx context.Context, photo *domain.GalleryPhoto) error {
	existing, err := s.galleryRepo.FindByID(ctx, photo.ID)
	if err != nil {
		return err
	}
	photo.FilePath = existing.FilePath
	return s.galleryRepo.Update(ctx, photo)
}

// Remove implements domain.GalleryService
func (s *GalleryServiceImpl) Remove(ctx context.Context, id uint) error {
	photo, err := s.galleryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Remove(ctx, photo.FilePath); err != nil {
		log.Printf("UPLOAD_ORPHAN: path=%s error=%v", photo.FilePath, err)
	}
	return nil
}

package mocks

import (
	"context"

	"github.com/you/profilecms/domain"
)

// MockArticleRepository implements domain.ArticleRepository interface for testing
type MockArticleRepository struct {
	CreateFunc         func(ctx context.Context, article *domain.Article) error
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.Article, error)
	FindBySlugFunc     func(ctx context.Context, slug string) (*domain.Article, error)
	ListFunc           func(ctx context.Context, filter domain.ListFilter, publishedOnly bool) ([]*domain.Article, int64, error)
	UpdateFunc         func(ctx context.Context, article *domain.Article) error
	DeleteFunc         func(ctx context.Context, id uint) error
	IncrementViewsFunc func(ctx context.Context, id uint) error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, article)
	}
	return nil
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uint) (*domain.Article, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrArticleNotFound
}

func (m *MockArticleRepository) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrArticleNotFound
}

func (m *MockArticleRepository) List(ctx context.Context, filter domain.ListFilter, publishedOnly bool) ([]*domain.Article, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, publishedOnly)
	}
	return nil, 0, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, article)
	}
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockArticleRepository) IncrementViews(ctx context.Context, id uint) error {
	if m.IncrementViewsFunc != nil {
		return m.IncrementViewsFunc(ctx, id)
	}
	return nil
}

// MockEventRepository implements domain.EventRepository interface for testing
type MockEventRepository struct {
	CreateFunc             func(ctx context.Context, event *domain.Event) error
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.Event, error)
	FindBySlugFunc         func(ctx context.Context, slug string) (*domain.Event, error)
	ListFunc               func(ctx context.Context, filter domain.ListFilter, publishedOnly bool) ([]*domain.Event, int64, error)
	ListUpcomingFunc       func(ctx context.Context, filter domain.ListFilter) ([]*domain.Event, int64, error)
	UpdateFunc             func(ctx context.Context, event *domain.Event) error
	DeleteFunc             func(ctx context.Context, id uint) error
	CreateRegistrationFunc func(ctx context.Context, reg *domain.EventRegistration) error
	CountRegistrationsFunc func(ctx context.Context, eventID uint) (int64, error)
	FindRegistrationFunc   func(ctx context.Context, eventID uint, email string) (*domain.EventRegistration, error)
	ListRegistrationsFunc  func(ctx context.Context, eventID uint, filter domain.ListFilter) ([]*domain.EventRegistration, int64, error)
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uint) (*domain.Event, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrEventNotFound
}

func (m *MockEventRepository) FindBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrEventNotFound
}

func (m *MockEventRepository) List(ctx context.Context, filter domain.ListFilter, publishedOnly bool) ([]*domain.Event, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, publishedOnly)
	}
	return nil, 0, nil
}

func (m *MockEventRepository) ListUpcoming(ctx context.Context, filter domain.ListFilter) ([]*domain.Event, int64, error) {
	if m.ListUpcomingFunc != nil {
		return m.ListUpcomingFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockEventRepository) CreateRegistration(ctx context.Context, reg *domain.EventRegistration) error {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg)
	}
	return nil
}

func (m *MockEventRepository) CountRegistrations(ctx context.Context, eventID uint) (int64, error) {
	if m.CountRegistrationsFunc != nil {
		return m.CountRegistrationsFunc(ctx, eventID)
	}
	return 0, nil
}

func (m *MockEventRepository) FindRegistration(ctx context.Context, eventID uint, email string) (*domain.EventRegistration, error) {
	if m.FindRegistrationFunc != nil {
		return m.FindRegistrationFunc(ctx, eventID, email)
	}
	return nil, domain.ErrRegistrationNotFound
}

func (m *MockEventRepository) ListRegistrations(ctx context.Context, eventID uint, filter domain.ListFilter) ([]*domain.EventRegistration, int64, error) {
	if m.ListRegistrationsFunc != nil {
		return m.ListRegistrationsFunc(ctx, eventID, filter)
	}
	return nil, 0, nil
}

// MockGalleryRepository implements domain.GalleryRepository interface for testing
type MockGalleryRepository struct {
	CreateFunc   func(ctx context.Context, photo *domain.GalleryPhoto) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.GalleryPhoto, error)
	ListFunc     func(ctx context.Context, filter domain.ListFilter) ([]*domain.GalleryPhoto, int64, error)
	UpdateFunc   func(ctx context.Context, photo *domain.GalleryPhoto) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func NewMockGalleryRepository() *MockGalleryRepository {
	return &MockGalleryRepository{}
}

func (m *MockGalleryRepository) Create(ctx context.Context, photo *domain.GalleryPhoto) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, photo)
	}
	return nil
}

func (m *MockGalleryRepository) FindByID(ctx context.Context, id uint) (*domain.GalleryPhoto, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrPhotoNotFound
}

func (m *MockGalleryRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.GalleryPhoto, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *MockGalleryRepository) Update(ctx context.Context, photo *domain.GalleryPhoto) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, photo)
	}
	return nil
}

func (m *MockGalleryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockContactRepository implements domain.ContactRepository interface for testing
type MockContactRepository struct {
	CreateFunc   func(ctx context.Context, msg *domain.ContactMessage) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.ContactMessage, error)
	ListFunc     func(ctx context.Context, filter domain.ListFilter) ([]*domain.ContactMessage, int64, error)
	MarkReadFunc func(ctx context.Context, id uint) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{}
}

func (m *MockContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	return nil
}

func (m *MockContactRepository) FindByID(ctx context.Context, id uint) (*domain.ContactMessage, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrMessageNotFound
}

func (m *MockContactRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.ContactMessage, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *MockContactRepository) MarkRead(ctx context.Context, id uint) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id)
	}
	return nil
}

func (m *MockContactRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

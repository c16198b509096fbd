package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/you/profilecms/domain"
)

// EventServiceImpl implements domain.EventService
type EventServiceImpl struct {
	eventRepo domain.EventRepository
	audit     domain.AuditLogger
}

// NewEventService creates a new event service
func NewEventService(eventRepo domain.EventRepository, audit domain.AuditLogger) domain.EventService {
	return &EventServiceImpl{eventRepo: eventRepo, audit: audit}
}

// Create implements domain.EventService
func (s *EventServiceImpl) Create(ctx context.Context, event *domain.Event) error {
	if event.Slug == "" {
		event.Slug = Slugify(event.Title)
	}
	if existing, err := s.eventRepo.FindBySlug(ctx, event.Slug); err == nil && existing != nil {
		return domain.ErrSlugTaken
	}
	if event.EndsAt.Before(event.StartsAt) {
		return fmt.Errorf("event cannot end before it starts")
	}
	return s.eventRepo.Create(ctx, event)
}

// Get implements domain.EventService
func (s *EventServiceImpl) Get(ctx context.Context, id uint) (*domain.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

// GetBySlug implements domain.EventService
func (s *EventServiceImpl) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	event, err := s.eventRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !event.Published {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

// ListUpcoming implements domain.EventService
func (s *EventServiceImpl) ListUpcoming(ctx context.Context, filter domain.ListFilter) ([]*domain.Event, int64, error) {
	return s.eventRepo.ListUpcoming(ctx, filter)
}

// ListAll implements domain.EventService
func (s *EventServiceImpl) ListAll(ctx context.Context, filter domain.ListFilter) ([]*domain.Event, int64, error) {
	return s.eventRepo.List(ctx, filter, false)
}

// Update implements domain.EventService
func (s *EventServiceImpl) Update(ctx context.Context, event *domain.Event) error {
	existing, err := s.eventRepo.FindByID(ctx, event.ID)
	if err != nil {
		return err
	}
	if event.Slug == "" {
		event.Slug = existing.Slug
	}
	if event.Slug != existing.Slug {
		if other, err := s.eventRepo.FindBySlug(ctx, event.Slug); err == nil && other != nil {
			return domain.ErrSlugTaken
		} else if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
			return err
		}
	}
	return s.eventRepo.Update(ctx, event)
}

// Delete implements domain.EventService
func (s *EventServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.eventRepo.Delete(ctx, id)
}

// Register implements domain.EventService. Capacity and duplicate checks
// happen here; the unique (event, email) index backs them up under races.
func (s *EventServiceImpl) Register(ctx context.Context, eventID uint, reg *domain.EventRegistration) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !event.Published {
		return domain.ErrEventNotFound
	}

	if existing, err := s.eventRepo.FindRegistration(ctx, eventID, reg.Email); err == nil && existing != nil {
		return domain.ErrAlreadyRegistered
	} else if err != nil && !errors.Is(err, domain.ErrRegistrationNotFound) {
		return err
	}

	if event.Capacity > 0 {
		count, err := s.eventRepo.CountRegistrations(ctx, eventID)
		if err != nil {
			return err
		}
		if count >= int64(event.Capacity) {
			return domain.ErrEventFull
		}
	}

	reg.EventID = eventID
	reg.Code = uuid.NewString()
	return s.eventRepo.CreateRegistration(ctx, reg)
}

// Registrations implements domain.EventService
func (s *EventServiceImpl) Registrations(ctx context.Context, eventID uint, filter domain.ListFilter) ([]*domain.EventRegistration, int64, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, 0, err
	}
	return s.eventRepo.ListRegistrations(ctx, eventID, filter)
}

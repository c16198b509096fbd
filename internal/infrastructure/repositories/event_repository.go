package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/you/profilecms/domain"
	"gorm.io/gorm"
)

// EventRepositoryImpl implements domain.EventRepository using GORM
type EventRepositoryImpl struct {
	db *gorm.DB
}

// DBEvent represents the database model for Event
type DBEvent struct {
	ID          uint   `gorm:"primaryKey"`
	Slug        string `gorm:"uniqueIndex;size:255"`
	Title       string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"size:255"`
	StartsAt    time.Time `gorm:"index"`
	EndsAt      time.Time
	Capacity    int
	Published   bool      `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBEvent) TableName() string {
	return "events"
}

// DBEventRegistration represents the database model for EventRegistration.
// The (event_id, email) pair is unique so one address cannot register twice.
type DBEventRegistration struct {
	ID        uint   `gorm:"primaryKey"`
	EventID   uint   `gorm:"uniqueIndex:idx_event_email"`
	Email     string `gorm:"uniqueIndex:idx_event_email;size:255"`
	Code      string `gorm:"uniqueIndex;size:64"`
	Name      string `gorm:"size:255"`
	Phone     string `gorm:"size:32"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBEventRegistration) TableName() string {
	return "event_registrations"
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) domain.EventRepository {
	return &EventRepositoryImpl{db: db}
}

// Create implements domain.EventRepository
func (r *EventRepositoryImpl) Create(ctx context.Context, event *domain.Event) error {
	dbEvent := eventToDB(event)
	if err := r.db.WithContext(ctx).Create(dbEvent).Error; err != nil {
		return err
	}
	event.ID = dbEvent.ID
	return nil
}

// FindByID implements domain.EventRepository
func (r *EventRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Event, error) {
	var dbEvent DBEvent
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbEvent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return eventToDomain(&dbEvent), nil
}

// FindBySlug implements domain.EventRepository
func (r *EventRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	var dbEvent DBEvent
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&dbEvent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return eventToDomain(&dbEvent), nil
}

// List implements domain.EventRepository
func (r *EventRepositoryImpl) List(ctx context.Context, filter domain.ListFilter, publishedOnly bool) ([]*domain.Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&DBEvent{})
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	if filter.Search != "" {
		q = q.Where("title LIKE ?", "%"+filter.Search+"%")
	}
	return r.list(q, filter, "starts_at DESC")
}

// ListUpcoming implements domain.EventRepository
func (r *EventRepositoryImpl) ListUpcoming(ctx context.Context, filter domain.ListFilter) ([]*domain.Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&DBEvent{}).
		Where("published = ? AND starts_at > ?", true, time.Now())
	return r.list(q, filter, "starts_at ASC")
}

func (r *EventRepositoryImpl) list(q *gorm.DB, filter domain.ListFilter, order string) ([]*domain.Event, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbEvents []DBEvent
	err := q.Order(order).Limit(filter.Limit()).Offset(filter.Offset()).Find(&dbEvents).Error
	if err != nil {
		return nil, 0, err
	}

	events := make([]*domain.Event, len(dbEvents))
	for i := range dbEvents {
		events[i] = eventToDomain(&dbEvents[i])
	}
	return events, total, nil
}

// Update implements domain.EventRepository. created_at stays the
// row's own.
func (r *EventRepositoryImpl) Update(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Omit("created_at").Save(eventToDB(event)).Error
}

// Delete implements domain.EventRepository
func (r *EventRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBEvent{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// CreateRegistration implements domain.EventRepository
func (r *EventRepositoryImpl) CreateRegistration(ctx context.Context, reg *domain.EventRegistration) error {
	dbReg := &DBEventRegistration{
		EventID: reg.EventID,
		Email:   reg.Email,
		Code:    reg.Code,
		Name:    reg.Name,
		Phone:   reg.Phone,
	}
	if err := r.db.WithContext(ctx).Create(dbReg).Error; err != nil {
		return err
	}
	reg.ID = dbReg.ID
	reg.CreatedAt = dbReg.CreatedAt
	return nil
}

// CountRegistrations implements domain.EventRepository
func (r *EventRepositoryImpl) CountRegistrations(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBEventRegistration{}).
		Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

// FindRegistration implements domain.EventRepository
func (r *EventRepositoryImpl) FindRegistration(ctx context.Context, eventID uint, email string) (*domain.EventRegistration, error) {
	var dbReg DBEventRegistration
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND email = ?", eventID, email).First(&dbReg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return regToDomain(&dbReg), nil
}

// ListRegistrations implements domain.EventRepository
func (r *EventRepositoryImpl) ListRegistrations(ctx context.Context, eventID uint, filter domain.ListFilter) ([]*domain.EventRegistration, int64, error) {
	q := r.db.WithContext(ctx).Model(&DBEventRegistration{}).Where("event_id = ?", eventID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbRegs []DBEventRegistration
	err := q.Order("created_at ASC").Limit(filter.Limit()).Offset(filter.Offset()).Find(&dbRegs).Error
	if err != nil {
		return nil, 0, err
	}

	regs := make([]*domain.EventRegistration, len(dbRegs))
	for i := range dbRegs {
		regs[i] = regToDomain(&dbRegs[i])
	}
	return regs, total, nil
}

func eventToDB(e *domain.Event) *DBEvent {
	return &DBEvent{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		Capacity:    e.Capacity,
		Published:   e.Published,
	}
}

func eventToDomain(e *DBEvent) *domain.Event {
	return &domain.Event{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		Capacity:    e.Capacity,
		Published:   e.Published,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func regToDomain(r *DBEventRegistration) *domain.EventRegistration {
	return &domain.EventRegistration{
		ID:        r.ID,
		EventID:   r.EventID,
		Code:      r.Code,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
	}
}

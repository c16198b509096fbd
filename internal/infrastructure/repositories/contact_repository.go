package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/you/profilecms/domain"
	"gorm.io/gorm"
)

// ContactRepositoryImpl implements domain.ContactRepository using GORM
type ContactRepositoryImpl struct {
	db *gorm.DB
}

// DBContactMessage represents the database model for ContactMessage
type DBContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255"`
	Email     string `gorm:"size:255"`
	Subject   string `gorm:"size:255"`
	Message   string `gorm:"type:text"`
	Read      bool   `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBContactMessage) TableName() string {
	return "contact_messages"
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) domain.ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

// Create implements domain.ContactRepository
func (r *ContactRepositoryImpl) Create(ctx context.Context, msg *domain.ContactMessage) error {
	dbMsg := &DBContactMessage{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
	}
	if err := r.db.WithContext(ctx).Create(dbMsg).Error; err != nil {
		return err
	}
	msg.ID = dbMsg.ID
	msg.CreatedAt = dbMsg.CreatedAt
	return nil
}

// FindByID implements domain.ContactRepository
func (r *ContactRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.ContactMessage, error) {
	var dbMsg DBContactMessage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbMsg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return messageToDomain(&dbMsg), nil
}

// List implements domain.ContactRepository
func (r *ContactRepositoryImpl) List(ctx context.Context, filter domain.ListFilter) ([]*domain.ContactMessage, int64, error) {
	q := r.db.WithContext(ctx).Model(&DBContactMessage{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("email LIKE ? OR subject LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbMsgs []DBContactMessage
	err := q.Order("created_at DESC").Limit(filter.Limit()).Offset(filter.Offset()).Find(&dbMsgs).Error
	if err != nil {
		return nil, 0, err
	}

	msgs := make([]*domain.ContactMessage, len(dbMsgs))
	for i := range dbMsgs {
		msgs[i] = messageToDomain(&dbMsgs[i])
	}
	return msgs, total, nil
}

// MarkRead implements domain.ContactRepository
func (r *ContactRepositoryImpl) MarkRead(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&DBContactMessage{}).Where("id = ?", id).Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

// Delete implements domain.ContactRepository
func (r *ContactRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBContactMessage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func messageToDomain(m *DBContactMessage) *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

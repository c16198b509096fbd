package services

import (
	"context"
	"fmt"
	"log"

	"github.com/you/profilecms/domain"
)

// ContactServiceImpl implements domain.ContactService
type ContactServiceImpl struct {
	contactRepo     domain.ContactRepository
	notificationSvc domain.NotificationService
	notifyTo        string
}

// NewContactService creates a new contact service. notifyTo is the phone
// number that receives a heads-up SMS per submission; empty disables it.
func NewContactService(contactRepo domain.ContactRepository, notificationSvc domain.NotificationService, notifyTo string) domain.ContactService {
	return &ContactServiceImpl{
		contactRepo:     contactRepo,
		notificationSvc: notificationSvc,
		notifyTo:        notifyTo,
	}
}

// Submit implements domain.ContactService. The message is persisted first;
// the notification is best effort and never fails the submission.
func (s *ContactServiceImpl) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}

	if s.notifyTo != "" {
		text := fmt.Sprintf("New contact message #%d from %s <%s>: %s", msg.ID, msg.Name, msg.Email, msg.Subject)
		if err := s.notificationSvc.SendSMS(s.notifyTo, text); err != nil {
			log.Printf("CONTACT_NOTIFY_FAILED: message_id=%d error=%v", msg.ID, err)
		}
	}

	return nil
}

// List implements domain.ContactService
func (s *ContactServiceImpl) List(ctx context.Context, filter domain.ListFilter) ([]*domain.ContactMessage, int64, error) {
	return s.contactRepo.List(ctx, filter)
}

// MarkRead implements domain.ContactService
func (s *ContactServiceImpl) MarkRead(ctx context.Context, id uint) error {
	return s.contactRepo.MarkRead(ctx, id)
}

// Delete implements domain.ContactService
func (s *ContactServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.contactRepo.Delete(ctx, id)
}

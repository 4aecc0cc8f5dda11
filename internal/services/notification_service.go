package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"gymfit/internal/models/db_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

var eventTitles = map[queue.EventType]string{
	queue.EventOrderCompleted:      "New order",
	queue.EventSubscriptionCreated: "New subscription",
	queue.EventBookingCreated:      "New class booking",
	queue.EventBookingCancelled:    "Booking cancelled",
	queue.EventContactReceived:     "New contact message",
}

type NotificationService interface {
	List(ctx context.Context, unreadOnly bool, page, pageSize int) (*response_models.PageResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	UnreadCount(ctx context.Context) (int64, error)
	// FromEvent stores one notification per consumed domain event.
	FromEvent(ctx context.Context, ev queue.Event) error
}

type notificationService struct {
	repo repositories.NotificationRepository
}

func NewNotificationService(repo repositories.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, unreadOnly bool, page, pageSize int) (*response_models.PageResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize <= 0 {
		pageSize = DefaultAdminPageSize
	}
	rows, total, err := s.repo.List(ctx, unreadOnly, page, pageSize)
	if err != nil {
		log.Printf("Failed to list notifications: %v", err)
		return nil, utils.ErrDatabaseError
	}
	out := response_models.NewPage(rows, total, page, pageSize)
	return &out, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		log.Printf("Failed to mark notification %s read: %v", id, err)
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx)
	if err != nil {
		log.Printf("Failed to mark notifications read: %v", err)
		return 0, utils.ErrDatabaseError
	}
	return n, nil
}

func (s *notificationService) UnreadCount(ctx context.Context) (int64, error) {
	n, err := s.repo.UnreadCount(ctx)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return n, nil
}

func (s *notificationService) FromEvent(ctx context.Context, ev queue.Event) error {
	title, ok := eventTitles[ev.Type]
	if !ok {
		title = string(ev.Type)
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, &db_models.AdminNotification{
		Title:   title,
		Message: ev.Summary,
		Payload: datatypes.JSON(payload),
	})
}

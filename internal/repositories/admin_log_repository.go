package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
)

// ActivityRepository is the append-only admin audit trail.
type ActivityRepository interface {
	Create(ctx context.Context, activity *db_models.AdminActivity) error
	Recent(ctx context.Context, limit int) ([]db_models.AdminActivity, error)
	// WithTx binds the repository to an open transaction.
	WithTx(tx *gorm.DB) ActivityRepository
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (a *activityRepository) WithTx(tx *gorm.DB) ActivityRepository {
	return &activityRepository{db: tx}
}

func (a *activityRepository) Create(ctx context.Context, activity *db_models.AdminActivity) error {
	return a.db.WithContext(ctx).Create(activity).Error
}

func (a *activityRepository) Recent(ctx context.Context, limit int) ([]db_models.AdminActivity, error) {
	var rows []db_models.AdminActivity
	err := a.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

type NotificationRepository interface {
	Create(ctx context.Context, n *db_models.AdminNotification) error
	List(ctx context.Context, unreadOnly bool, page, pageSize int) ([]db_models.AdminNotification, int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
	WithTx(tx *gorm.DB) NotificationRepository
	MarkAllRead(ctx context.Context) (int64, error)
	UnreadCount(ctx context.Context) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (n *notificationRepository) WithTx(tx *gorm.DB) NotificationRepository {
	return &notificationRepository{db: tx}
}

func (n *notificationRepository) Create(ctx context.Context, notification *db_models.AdminNotification) error {
	return n.db.WithContext(ctx).Create(notification).Error
}

func (n *notificationRepository) List(ctx context.Context, unreadOnly bool, page, pageSize int) ([]db_models.AdminNotification, int64, error) {
	base := func() *gorm.DB {
		tx := n.db.WithContext(ctx).Model(&db_models.AdminNotification{})
		if unreadOnly {
			tx = tx.Where("is_read = ?", false)
		}
		return tx
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []db_models.AdminNotification
	err := base().
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (n *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	res := n.db.WithContext(ctx).
		Model(&db_models.AdminNotification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (n *notificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	res := n.db.WithContext(ctx).
		Model(&db_models.AdminNotification{}).
		Where("is_read = ?", false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (n *notificationRepository) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	err := n.db.WithContext(ctx).
		Model(&db_models.AdminNotification{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}

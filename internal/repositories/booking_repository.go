package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymfit/internal/models/db_models"
	"gymfit/pkg/utils"
)

type BookingRepository interface {
	// Create rejects a second Booked row for the same account, schedule and date.
	Create(ctx context.Context, booking *db_models.ClassBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.ClassBooking, error)
	// UpdateStatus moves a booking only while it still has status from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to db_models.BookingStatus) (bool, error)
	Upcoming(ctx context.Context, accountID uuid.UUID, fromDate int64) ([]db_models.ClassBooking, error)
	History(ctx context.Context, accountID uuid.UUID) ([]db_models.ClassBooking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func withSchedule(db *gorm.DB) *gorm.DB {
	return db.Preload("ClassSchedule.GymClass")
}

func (b *bookingRepository) Create(ctx context.Context, booking *db_models.ClassBooking) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := HasActiveBooking(tx, booking)
		if err != nil {
			return err
		}
		if taken {
			return utils.ErrDuplicateBooking
		}
		return tx.Omit(clause.Associations).Create(booking).Error
	})
}

func (b *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.ClassBooking, error) {
	var booking db_models.ClassBooking
	err := b.db.WithContext(ctx).Scopes(withSchedule).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (b *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to db_models.BookingStatus) (bool, error) {
	res := b.db.WithContext(ctx).
		Model(&db_models.ClassBooking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{"status": to, "updated_at": utils.NowUnixSeconds()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (b *bookingRepository) Upcoming(ctx context.Context, accountID uuid.UUID, fromDate int64) ([]db_models.ClassBooking, error) {
	var bookings []db_models.ClassBooking
	err := b.db.WithContext(ctx).
		Scopes(withSchedule).
		Where("account_id = ? AND status = ? AND booking_date >= ?", accountID, db_models.BookingBooked, fromDate).
		Order("booking_date ASC").
		Find(&bookings).Error
	return bookings, err
}

func (b *bookingRepository) History(ctx context.Context, accountID uuid.UUID) ([]db_models.ClassBooking, error) {
	var bookings []db_models.ClassBooking
	err := b.db.WithContext(ctx).
		Scopes(withSchedule).
		Where("account_id = ?", accountID).
		Order("booking_date DESC").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// HasActiveBooking reports whether another Booked row exists for the same
// account, schedule and date as b.
func HasActiveBooking(tx *gorm.DB, b *db_models.ClassBooking) (bool, error) {
	var n int64
	q := tx.Model(&db_models.ClassBooking{}).
		Where("account_id = ? AND class_schedule_id = ? AND booking_date = ? AND status = ?",
			b.AccountID, b.ClassScheduleID, b.BookingDate, db_models.BookingBooked)
	if b.ID != uuid.Nil {
		q = q.Where("id <> ?", b.ID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

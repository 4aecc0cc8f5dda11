package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dbm "gymfit/internal/models/db_models"
)

// ReportRange bounds a report in unix seconds, both ends inclusive.
type ReportRange struct {
	Start int64
	End   int64
}

type ReportRepository interface {
	// Export rows, newest first.
	Accounts(ctx context.Context, rng ReportRange, active *bool) ([]dbm.Account, error)
	Orders(ctx context.Context, rng ReportRange, status string) ([]dbm.Order, error)
	Subscriptions(ctx context.Context, rng ReportRange, status dbm.SubscriptionStatus, planID *uuid.UUID, today int64) ([]dbm.PlanSubscription, error)
	Bookings(ctx context.Context, rng ReportRange, status string) ([]dbm.ClassBooking, error)

	// Statistics
	UserStats(ctx context.Context, rng ReportRange) (UserStatsRow, error)
	SalesByPaymentMethod(ctx context.Context, rng ReportRange) ([]GroupAmountRow, error)
	SalesByStatus(ctx context.Context, rng ReportRange) ([]GroupAmountRow, error)
	SubscriptionCounts(ctx context.Context, today, expiringBy int64) (SubscriptionCountsRow, error)
	SubscriptionsByPlan(ctx context.Context, rng ReportRange) ([]GroupAmountRow, error)
	DailySubscriptions(ctx context.Context, rng ReportRange) ([]DayBucket, error)
	BookingsByStatus(ctx context.Context, rng ReportRange) ([]GroupCountRow, error)
	BookingsByClass(ctx context.Context, rng ReportRange) ([]GroupCountRow, error)
	BookingsByWeekday(ctx context.Context, rng ReportRange) ([]GroupCountRow, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

type UserStatsRow struct {
	Total  int64 `gorm:"column:total" json:"total"`
	Active int64 `gorm:"column:active" json:"active"`
	New    int64 `gorm:"column:new_in_range" json:"new"`
}

type SubscriptionCountsRow struct {
	Total    int64 `gorm:"column:total" json:"total"`
	Active   int64 `gorm:"column:active" json:"active"`
	Expired  int64 `gorm:"column:expired" json:"expired"`
	Expiring int64 `gorm:"column:expiring" json:"expiring"`
}

type GroupAmountRow struct {
	Key    string          `gorm:"column:group_key" json:"key"`
	Count  int64           `gorm:"column:count" json:"count"`
	Amount decimal.Decimal `gorm:"column:amount" json:"amount"`
}

type GroupCountRow struct {
	Key   string `gorm:"column:group_key" json:"key"`
	Count int64  `gorm:"column:count" json:"count"`
}

// ---------- Export rows ----------
func (r *reportRepository) Accounts(ctx context.Context, rng ReportRange, active *bool) ([]dbm.Account, error) {
	var rows []dbm.Account
	tx := r.db.WithContext(ctx).Where("created_at BETWEEN ? AND ?", rng.Start, rng.End)
	if active != nil {
		tx = tx.Where("is_active = ?", *active)
	}
	err := tx.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *reportRepository) Orders(ctx context.Context, rng ReportRange, status string) ([]dbm.Order, error) {
	var rows []dbm.Order
	tx := r.db.WithContext(ctx).
		Preload("Account", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("created_at BETWEEN ? AND ?", rng.Start, rng.End)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err := tx.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *reportRepository) Subscriptions(ctx context.Context, rng ReportRange, status dbm.SubscriptionStatus, planID *uuid.UUID, today int64) ([]dbm.PlanSubscription, error) {
	var rows []dbm.PlanSubscription
	tx := r.db.WithContext(ctx).
		Preload("Account", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Plan", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("created_at BETWEEN ? AND ?", rng.Start, rng.End)
	switch status {
	case dbm.SubStatusActive:
		tx = tx.Where("active = ? AND end_date >= ?", true, today)
	case dbm.SubStatusExpired:
		tx = tx.Where("end_date < ?", today)
	case dbm.SubStatusInactive:
		tx = tx.Where("active = ? AND end_date >= ?", false, today)
	}
	if planID != nil {
		tx = tx.Where("plan_id = ?", *planID)
	}
	err := tx.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *reportRepository) Bookings(ctx context.Context, rng ReportRange, status string) ([]dbm.ClassBooking, error) {
	var rows []dbm.ClassBooking
	tx := r.db.WithContext(ctx).
		Preload("Account", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("ClassSchedule.GymClass", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("booking_date BETWEEN ? AND ?", rng.Start, rng.End)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err := tx.Order("booking_date DESC").Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// ---------- Statistics ----------
func (r *reportRepository) UserStats(ctx context.Context, rng ReportRange) (UserStatsRow, error) {
	var row UserStatsRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Select(`
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0) AS active,
			COALESCE(SUM(CASE WHEN created_at BETWEEN ? AND ? THEN 1 ELSE 0 END), 0) AS new_in_range`,
			rng.Start, rng.End).
		Scan(&row).Error
	return row, err
}

func (r *reportRepository) salesGroupedBy(ctx context.Context, column string, rng ReportRange) ([]GroupAmountRow, error) {
	var rows []GroupAmountRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Order{}).
		Select(column+" AS group_key, COUNT(*) AS count, COALESCE(SUM(total), 0) AS amount").
		Where("created_at BETWEEN ? AND ?", rng.Start, rng.End).
		Group(column).
		Order("amount DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) SalesByPaymentMethod(ctx context.Context, rng ReportRange) ([]GroupAmountRow, error) {
	return r.salesGroupedBy(ctx, "payment_method", rng)
}

func (r *reportRepository) SalesByStatus(ctx context.Context, rng ReportRange) ([]GroupAmountRow, error) {
	return r.salesGroupedBy(ctx, "status", rng)
}

func (r *reportRepository) SubscriptionCounts(ctx context.Context, today, expiringBy int64) (SubscriptionCountsRow, error) {
	var row SubscriptionCountsRow
	err := r.db.WithContext(ctx).
		Model(&dbm.PlanSubscription{}).
		Select(`
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN active AND end_date >= ? THEN 1 ELSE 0 END), 0) AS active,
			COALESCE(SUM(CASE WHEN end_date < ? THEN 1 ELSE 0 END), 0) AS expired,
			COALESCE(SUM(CASE WHEN active AND end_date BETWEEN ? AND ? THEN 1 ELSE 0 END), 0) AS expiring`,
			today, today, today, expiringBy).
		Scan(&row).Error
	return row, err
}

func (r *reportRepository) SubscriptionsByPlan(ctx context.Context, rng ReportRange) ([]GroupAmountRow, error) {
	var rows []GroupAmountRow
	err := r.db.WithContext(ctx).
		Table("plan_subscriptions s").
		Select("p.name AS group_key, COUNT(*) AS count, COALESCE(SUM(p.price), 0) AS amount").
		Joins("JOIN plans p ON p.id = s.plan_id").
		Where("s.deleted_at IS NULL").
		Where("s.created_at BETWEEN ? AND ?", rng.Start, rng.End).
		Group("p.name").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) DailySubscriptions(ctx context.Context, rng ReportRange) ([]DayBucket, error) {
	var rows []DayBucket
	err := r.db.WithContext(ctx).
		Table("plan_subscriptions s").
		Select(dayBucket("s.created_at")+" AS day, COUNT(*) AS count, COALESCE(SUM(p.price), 0) AS amount").
		Joins("JOIN plans p ON p.id = s.plan_id").
		Where("s.deleted_at IS NULL").
		Where("s.created_at BETWEEN ? AND ?", rng.Start, rng.End).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) bookingsGroupedBy(ctx context.Context, column string, rng ReportRange) ([]GroupCountRow, error) {
	var rows []GroupCountRow
	err := r.db.WithContext(ctx).
		Table("class_bookings b").
		Select(column+" AS group_key, COUNT(*) AS count").
		Joins("JOIN class_schedules cs ON cs.id = b.class_schedule_id").
		Joins("JOIN gym_classes g ON g.id = cs.gym_class_id").
		Where("b.deleted_at IS NULL").
		Where("b.booking_date BETWEEN ? AND ?", rng.Start, rng.End).
		Group(column).
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) BookingsByStatus(ctx context.Context, rng ReportRange) ([]GroupCountRow, error) {
	return r.bookingsGroupedBy(ctx, "b.status", rng)
}

func (r *reportRepository) BookingsByClass(ctx context.Context, rng ReportRange) ([]GroupCountRow, error) {
	return r.bookingsGroupedBy(ctx, "g.name", rng)
}

func (r *reportRepository) BookingsByWeekday(ctx context.Context, rng ReportRange) ([]GroupCountRow, error) {
	return r.bookingsGroupedBy(ctx, "cs.day", rng)
}

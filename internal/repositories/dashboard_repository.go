package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dbm "gymfit/internal/models/db_models"
)

type DashboardRepository interface {
	// KPIs / counts
	CountTotalAccounts(ctx context.Context) (int64, error)
	CountNewAccounts(ctx context.Context, start, end int64) (int64, error)
	CountTotalProducts(ctx context.Context) (int64, error)
	CountTotalOrders(ctx context.Context) (int64, error)
	CountTotalSubscriptions(ctx context.Context) (int64, error)
	CountActiveSubscriptions(ctx context.Context, today int64) (int64, error)
	CountNewSubscriptions(ctx context.Context, start, end int64) (int64, error)
	CountBookings(ctx context.Context, start, end int64) (int64, error)

	// Money
	SalesTotals(ctx context.Context, start, end int64) (SalesTotalRow, error)
	SubscriptionRevenue(ctx context.Context, start, end int64) (decimal.Decimal, error)

	// Time series
	DailySales(ctx context.Context, start, end int64) ([]DayBucket, error)

	// Rankings
	TopProducts(ctx context.Context, start, end int64, limit int) ([]TopProductRow, error)
	TopPlans(ctx context.Context, start, end int64, limit int) ([]TopPlanRow, error)

	// Recent rows
	RecentOrders(ctx context.Context, limit int) ([]dbm.Order, error)
	RecentAccounts(ctx context.Context, limit int) ([]dbm.Account, error)
	RecentSubscriptions(ctx context.Context, limit int) ([]dbm.PlanSubscription, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type DayBucket struct {
	Day    int64           `gorm:"column:day" json:"day"`
	Count  int64           `gorm:"column:count" json:"count"`
	Amount decimal.Decimal `gorm:"column:amount" json:"amount"`
}

type SalesTotalRow struct {
	Total decimal.Decimal `gorm:"column:total"`
	Count int64           `gorm:"column:count"`
}

type TopProductRow struct {
	ProductID string `gorm:"column:product_id" json:"product_id"`
	Name      string `gorm:"column:name" json:"name"`
	Quantity  int64  `gorm:"column:quantity" json:"quantity"`
}

type TopPlanRow struct {
	PlanID string `gorm:"column:plan_id" json:"plan_id"`
	Name   string `gorm:"column:name" json:"name"`
	Count  int64  `gorm:"column:count" json:"count"`
}

// ---------- Helpers ----------
// dayBucket truncates a unix-seconds column to its UTC day.
func dayBucket(unixColumn string) string {
	return "(" + unixColumn + " / 86400) * 86400"
}

func (r *dashboardRepository) count(ctx context.Context, model interface{}, query string, args ...interface{}) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	err := tx.Count(&n).Error
	return n, err
}

// ---------- Counts ----------
func (r *dashboardRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.Account{}, "")
}

func (r *dashboardRepository) CountNewAccounts(ctx context.Context, start, end int64) (int64, error) {
	return r.count(ctx, &dbm.Account{}, "created_at BETWEEN ? AND ?", start, end)
}

func (r *dashboardRepository) CountTotalProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.Product{}, "")
}

func (r *dashboardRepository) CountTotalOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.Order{}, "")
}

func (r *dashboardRepository) CountTotalSubscriptions(ctx context.Context) (int64, error) {
	return r.count(ctx, &dbm.PlanSubscription{}, "")
}

func (r *dashboardRepository) CountActiveSubscriptions(ctx context.Context, today int64) (int64, error) {
	return r.count(ctx, &dbm.PlanSubscription{}, "active = ? AND end_date >= ?", true, today)
}

func (r *dashboardRepository) CountNewSubscriptions(ctx context.Context, start, end int64) (int64, error) {
	return r.count(ctx, &dbm.PlanSubscription{}, "created_at BETWEEN ? AND ?", start, end)
}

func (r *dashboardRepository) CountBookings(ctx context.Context, start, end int64) (int64, error) {
	return r.count(ctx, &dbm.ClassBooking{}, "booking_date BETWEEN ? AND ?", start, end)
}

// ---------- Money ----------
func (r *dashboardRepository) SalesTotals(ctx context.Context, start, end int64) (SalesTotalRow, error) {
	var row SalesTotalRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Order{}).
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS count").
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&row).Error
	return row, err
}

func (r *dashboardRepository) SubscriptionRevenue(ctx context.Context, start, end int64) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).
		Table("plan_subscriptions s").
		Select("COALESCE(SUM(p.price), 0) AS total").
		Joins("JOIN plans p ON p.id = s.plan_id").
		Where("s.deleted_at IS NULL").
		Where("s.created_at BETWEEN ? AND ?", start, end).
		Scan(&row).Error
	return row.Total, err
}

// ---------- Series ----------
func (r *dashboardRepository) DailySales(ctx context.Context, start, end int64) ([]DayBucket, error) {
	var rows []DayBucket
	err := r.db.WithContext(ctx).
		Model(&dbm.Order{}).
		Select(dayBucket("created_at")+" AS day, COUNT(*) AS count, COALESCE(SUM(total), 0) AS amount").
		Where("created_at BETWEEN ? AND ?", start, end).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

// ---------- Rankings ----------
func (r *dashboardRepository) TopProducts(ctx context.Context, start, end int64, limit int) ([]TopProductRow, error) {
	var rows []TopProductRow
	err := r.db.WithContext(ctx).
		Table("order_items oi").
		Select("oi.product_id, p.name, SUM(oi.quantity) AS quantity").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("o.deleted_at IS NULL AND oi.deleted_at IS NULL").
		Where("o.created_at BETWEEN ? AND ?", start, end).
		Group("oi.product_id, p.name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) TopPlans(ctx context.Context, start, end int64, limit int) ([]TopPlanRow, error) {
	var rows []TopPlanRow
	err := r.db.WithContext(ctx).
		Table("plan_subscriptions s").
		Select("s.plan_id, p.name, COUNT(*) AS count").
		Joins("JOIN plans p ON p.id = s.plan_id").
		Where("s.deleted_at IS NULL").
		Where("s.created_at BETWEEN ? AND ?", start, end).
		Group("s.plan_id, p.name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ---------- Recent rows ----------
func (r *dashboardRepository) RecentOrders(ctx context.Context, limit int) ([]dbm.Order, error) {
	var rows []dbm.Order
	err := r.db.WithContext(ctx).Preload("Account").Order("created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) RecentAccounts(ctx context.Context, limit int) ([]dbm.Account, error) {
	var rows []dbm.Account
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) RecentSubscriptions(ctx context.Context, limit int) ([]dbm.PlanSubscription, error) {
	var rows []dbm.PlanSubscription
	err := r.db.WithContext(ctx).Preload("Account").Preload("Plan").Order("created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

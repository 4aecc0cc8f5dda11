package response_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

type KPIBlock struct {
	TotalAccounts       int64 `json:"total_accounts"`
	TotalProducts       int64 `json:"total_products"`
	TotalOrders         int64 `json:"total_orders"`
	TotalSubscriptions  int64 `json:"total_subscriptions"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
}

type SeriesPoint struct {
	Date   string          `json:"date"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type RecentOrder struct {
	ID            uuid.UUID       `json:"id"`
	Username      string          `json:"username"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

type RecentSubscription struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	PlanName  string    `json:"plan_name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Status    string    `json:"status"`
}

type DashboardReport struct {
	Range               TimeRange            `json:"range"`
	KPIs                KPIBlock             `json:"kpis"`
	DailySales          []SeriesPoint        `json:"daily_sales"`
	SubscriptionRevenue decimal.Decimal      `json:"subscription_revenue"`
	RecentOrders        []RecentOrder        `json:"recent_orders"`
	RecentAccounts      []AccountResponse    `json:"recent_accounts"`
	RecentSubscriptions []RecentSubscription `json:"recent_subscriptions"`
	UnreadNotifications int64                `json:"unread_notifications"`
}

type TopProduct struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

type TopPlan struct {
	PlanID string `json:"plan_id"`
	Name   string `json:"name"`
	Count  int64  `json:"count"`
}

type ReportsOverview struct {
	Range            TimeRange       `json:"range"`
	NewUsers         int64           `json:"new_users"`
	SalesTotal       decimal.Decimal `json:"sales_total"`
	OrderCount       int64           `json:"order_count"`
	NewSubscriptions int64           `json:"new_subscriptions"`
	Bookings         int64           `json:"bookings"`
	TopProducts      []TopProduct    `json:"top_products"`
	TopPlans         []TopPlan       `json:"top_plans"`
}

type GroupAmount struct {
	Key    string          `json:"key"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type GroupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type UserStats struct {
	Range  TimeRange `json:"range"`
	Total  int64     `json:"total"`
	Active int64     `json:"active"`
	New    int64     `json:"new"`
}

type SalesStats struct {
	Range           TimeRange       `json:"range"`
	Total           decimal.Decimal `json:"total"`
	Count           int64           `json:"count"`
	Average         decimal.Decimal `json:"average"`
	ByPaymentMethod []GroupAmount   `json:"by_payment_method"`
	ByStatus        []GroupAmount   `json:"by_status"`
	Daily           []SeriesPoint   `json:"daily"`
}

type SubscriptionStats struct {
	Range    TimeRange     `json:"range"`
	Total    int64         `json:"total"`
	Active   int64         `json:"active"`
	Expired  int64         `json:"expired"`
	Expiring int64         `json:"expiring_soon"`
	ByPlan   []GroupAmount `json:"by_plan"`
	Daily    []SeriesPoint `json:"daily"`
}

type BookingStats struct {
	Range     TimeRange    `json:"range"`
	Total     int64        `json:"total"`
	ByStatus  []GroupCount `json:"by_status"`
	ByClass   []GroupCount `json:"by_class"`
	ByWeekday []GroupCount `json:"by_weekday"`
}

package services

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	dbm "gymfit/internal/models/db_models"
	resp "gymfit/internal/models/response_models"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

const (
	dashboardDays   = 30
	dashboardRecent = 5
	topLimit        = 5
	expiringDays    = 30
)

// OverviewRanges are the accepted date_range values in days.
var OverviewRanges = []int{7, 30, 90, 365}

// DateRange is an inclusive span of UTC calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// LastDays ends at today and covers n days.
func LastDays(now time.Time, n int) DateRange {
	to := utils.StartOfDay(now)
	return DateRange{From: to.AddDate(0, 0, -(n - 1)), To: to}
}

// ResolveDateRange parses YYYY-MM-DD bounds. Missing or malformed values fall
// back to the last 30 days and a reversed range is swapped.
func ResolveDateRange(start, end string, now time.Time) DateRange {
	def := LastDays(now, dashboardDays)
	rng := def
	if t, err := utils.ParseDate(start); err == nil {
		rng.From = t
	}
	if t, err := utils.ParseDate(end); err == nil {
		rng.To = t
	}
	if rng.From.After(rng.To) {
		rng.From, rng.To = rng.To, rng.From
	}
	return rng
}

func (r DateRange) Unix() repositories.ReportRange {
	return repositories.ReportRange{Start: r.From.Unix(), End: utils.EndOfDay(r.To).Unix()}
}

func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

func (r DateRange) response() resp.TimeRange {
	return resp.TimeRange{
		Start: r.From.Format(utils.DateLayout),
		End:   r.To.Format(utils.DateLayout),
		Days:  r.Days(),
	}
}

type DashboardService interface {
	Dashboard(ctx context.Context) (*resp.DashboardReport, error)
	Overview(ctx context.Context, days int) (*resp.ReportsOverview, error)
	UserStats(ctx context.Context, rng DateRange) (*resp.UserStats, error)
	SalesStats(ctx context.Context, rng DateRange) (*resp.SalesStats, error)
	SubscriptionStats(ctx context.Context, rng DateRange) (*resp.SubscriptionStats, error)
	BookingStats(ctx context.Context, rng DateRange) (*resp.BookingStats, error)
}

type dashboardService struct {
	repo          repositories.DashboardRepository
	reports       repositories.ReportRepository
	notifications repositories.NotificationRepository
	now           func() time.Time
}

func NewDashboardService(
	repo repositories.DashboardRepository,
	reports repositories.ReportRepository,
	notifications repositories.NotificationRepository,
) DashboardService {
	return &dashboardService{
		repo:          repo,
		reports:       reports,
		notifications: notifications,
		now:           time.Now,
	}
}

func dbFailure(op string, err error) error {
	log.Printf("Failed to %s: %v", op, err)
	return utils.ErrDatabaseError
}

func seriesPoints(rows []repositories.DayBucket) []resp.SeriesPoint {
	out := make([]resp.SeriesPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, resp.SeriesPoint{
			Date:   utils.FormatDate(r.Day),
			Count:  r.Count,
			Amount: r.Amount,
		})
	}
	return out
}

func (s *dashboardService) Dashboard(ctx context.Context) (*resp.DashboardReport, error) {
	rng := LastDays(s.now().UTC(), dashboardDays)
	window := rng.Unix()
	today := rng.To.Unix()

	// ---------- Core counts ----------
	var kpi resp.KPIBlock
	var err error
	if kpi.TotalAccounts, err = s.repo.CountTotalAccounts(ctx); err != nil {
		return nil, dbFailure("count accounts", err)
	}
	if kpi.TotalProducts, err = s.repo.CountTotalProducts(ctx); err != nil {
		return nil, dbFailure("count products", err)
	}
	if kpi.TotalOrders, err = s.repo.CountTotalOrders(ctx); err != nil {
		return nil, dbFailure("count orders", err)
	}
	if kpi.TotalSubscriptions, err = s.repo.CountTotalSubscriptions(ctx); err != nil {
		return nil, dbFailure("count subscriptions", err)
	}
	if kpi.ActiveSubscriptions, err = s.repo.CountActiveSubscriptions(ctx, today); err != nil {
		return nil, dbFailure("count active subscriptions", err)
	}

	// ---------- Series ----------
	daily, err := s.repo.DailySales(ctx, window.Start, window.End)
	if err != nil {
		return nil, dbFailure("load daily sales", err)
	}
	revenue, err := s.repo.SubscriptionRevenue(ctx, window.Start, window.End)
	if err != nil {
		return nil, dbFailure("sum subscription revenue", err)
	}

	// ---------- Recent rows ----------
	orders, err := s.repo.RecentOrders(ctx, dashboardRecent)
	if err != nil {
		return nil, dbFailure("load recent orders", err)
	}
	accounts, err := s.repo.RecentAccounts(ctx, dashboardRecent)
	if err != nil {
		return nil, dbFailure("load recent accounts", err)
	}
	subs, err := s.repo.RecentSubscriptions(ctx, dashboardRecent)
	if err != nil {
		return nil, dbFailure("load recent subscriptions", err)
	}
	unread, err := s.notifications.UnreadCount(ctx)
	if err != nil {
		return nil, dbFailure("count notifications", err)
	}

	report := &resp.DashboardReport{
		Range:               rng.response(),
		KPIs:                kpi,
		DailySales:          seriesPoints(daily),
		SubscriptionRevenue: revenue,
		RecentOrders:        make([]resp.RecentOrder, 0, len(orders)),
		RecentAccounts:      make([]resp.AccountResponse, 0, len(accounts)),
		RecentSubscriptions: make([]resp.RecentSubscription, 0, len(subs)),
		UnreadNotifications: unread,
	}
	for _, o := range orders {
		report.RecentOrders = append(report.RecentOrders, resp.RecentOrder{
			ID:            o.ID,
			Username:      usernameOf(o.Account),
			Total:         o.Total,
			PaymentMethod: string(o.PaymentMethod),
			Status:        string(o.Status),
			CreatedAt:     utils.FormatDateTime(o.CreatedAt),
		})
	}
	for i := range accounts {
		report.RecentAccounts = append(report.RecentAccounts, toAccountResponse(&accounts[i]))
	}
	now := s.now()
	for _, sub := range subs {
		row := resp.RecentSubscription{
			ID:        sub.ID,
			Username:  usernameOf(sub.Account),
			StartDate: utils.FormatDate(sub.StartDate),
			EndDate:   utils.FormatDate(sub.EndDate),
			Status:    string(sub.EffectiveStatus(now)),
		}
		if sub.Plan != nil {
			row.PlanName = sub.Plan.Name
		}
		report.RecentSubscriptions = append(report.RecentSubscriptions, row)
	}
	return report, nil
}

func (s *dashboardService) Overview(ctx context.Context, days int) (*resp.ReportsOverview, error) {
	valid := false
	for _, d := range OverviewRanges {
		if d == days {
			valid = true
			break
		}
	}
	if !valid {
		days = dashboardDays
	}
	rng := LastDays(s.now().UTC(), days)
	w := rng.Unix()

	out := &resp.ReportsOverview{Range: rng.response()}
	var err error
	if out.NewUsers, err = s.repo.CountNewAccounts(ctx, w.Start, w.End); err != nil {
		return nil, dbFailure("count new accounts", err)
	}
	sales, err := s.repo.SalesTotals(ctx, w.Start, w.End)
	if err != nil {
		return nil, dbFailure("sum sales", err)
	}
	out.SalesTotal, out.OrderCount = sales.Total, sales.Count
	if out.NewSubscriptions, err = s.repo.CountNewSubscriptions(ctx, w.Start, w.End); err != nil {
		return nil, dbFailure("count new subscriptions", err)
	}
	if out.Bookings, err = s.repo.CountBookings(ctx, w.Start, w.End); err != nil {
		return nil, dbFailure("count bookings", err)
	}

	products, err := s.repo.TopProducts(ctx, w.Start, w.End, topLimit)
	if err != nil {
		return nil, dbFailure("rank products", err)
	}
	out.TopProducts = make([]resp.TopProduct, 0, len(products))
	for _, p := range products {
		out.TopProducts = append(out.TopProducts, resp.TopProduct{ProductID: p.ProductID, Name: p.Name, Quantity: p.Quantity})
	}

	plans, err := s.repo.TopPlans(ctx, w.Start, w.End, topLimit)
	if err != nil {
		return nil, dbFailure("rank plans", err)
	}
	out.TopPlans = make([]resp.TopPlan, 0, len(plans))
	for _, p := range plans {
		out.TopPlans = append(out.TopPlans, resp.TopPlan{PlanID: p.PlanID, Name: p.Name, Count: p.Count})
	}
	return out, nil
}

func (s *dashboardService) UserStats(ctx context.Context, rng DateRange) (*resp.UserStats, error) {
	row, err := s.reports.UserStats(ctx, rng.Unix())
	if err != nil {
		return nil, dbFailure("load user stats", err)
	}
	return &resp.UserStats{Range: rng.response(), Total: row.Total, Active: row.Active, New: row.New}, nil
}

func groupAmounts(rows []repositories.GroupAmountRow) []resp.GroupAmount {
	out := make([]resp.GroupAmount, 0, len(rows))
	for _, r := range rows {
		out = append(out, resp.GroupAmount{Key: r.Key, Count: r.Count, Amount: r.Amount})
	}
	return out
}

func groupCounts(rows []repositories.GroupCountRow) []resp.GroupCount {
	out := make([]resp.GroupCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, resp.GroupCount{Key: r.Key, Count: r.Count})
	}
	return out
}

func (s *dashboardService) SalesStats(ctx context.Context, rng DateRange) (*resp.SalesStats, error) {
	w := rng.Unix()
	totals, err := s.repo.SalesTotals(ctx, w.Start, w.End)
	if err != nil {
		return nil, dbFailure("sum sales", err)
	}
	byMethod, err := s.reports.SalesByPaymentMethod(ctx, w)
	if err != nil {
		return nil, dbFailure("group sales by payment method", err)
	}
	byStatus, err := s.reports.SalesByStatus(ctx, w)
	if err != nil {
		return nil, dbFailure("group sales by status", err)
	}
	daily, err := s.repo.DailySales(ctx, w.Start, w.End)
	if err != nil {
		return nil, dbFailure("load daily sales", err)
	}

	avg := decimal.Zero
	if totals.Count > 0 {
		avg = totals.Total.Div(decimal.NewFromInt(totals.Count)).Round(2)
	}
	return &resp.SalesStats{
		Range:           rng.response(),
		Total:           totals.Total,
		Count:           totals.Count,
		Average:         avg,
		ByPaymentMethod: groupAmounts(byMethod),
		ByStatus:        groupAmounts(byStatus),
		Daily:           seriesPoints(daily),
	}, nil
}

func (s *dashboardService) SubscriptionStats(ctx context.Context, rng DateRange) (*resp.SubscriptionStats, error) {
	today := utils.StartOfDay(s.now())
	counts, err := s.reports.SubscriptionCounts(ctx, today.Unix(), today.AddDate(0, 0, expiringDays).Unix())
	if err != nil {
		return nil, dbFailure("count subscriptions", err)
	}
	byPlan, err := s.reports.SubscriptionsByPlan(ctx, rng.Unix())
	if err != nil {
		return nil, dbFailure("group subscriptions by plan", err)
	}
	daily, err := s.reports.DailySubscriptions(ctx, rng.Unix())
	if err != nil {
		return nil, dbFailure("load subscription trend", err)
	}
	return &resp.SubscriptionStats{
		Range:    rng.response(),
		Total:    counts.Total,
		Active:   counts.Active,
		Expired:  counts.Expired,
		Expiring: counts.Expiring,
		ByPlan:   groupAmounts(byPlan),
		Daily:    seriesPoints(daily),
	}, nil
}

func (s *dashboardService) BookingStats(ctx context.Context, rng DateRange) (*resp.BookingStats, error) {
	w := rng.Unix()
	byStatus, err := s.reports.BookingsByStatus(ctx, w)
	if err != nil {
		return nil, dbFailure("group bookings by status", err)
	}
	byClass, err := s.reports.BookingsByClass(ctx, w)
	if err != nil {
		return nil, dbFailure("group bookings by class", err)
	}
	byDay, err := s.reports.BookingsByWeekday(ctx, w)
	if err != nil {
		return nil, dbFailure("group bookings by weekday", err)
	}

	var total int64
	for _, r := range byStatus {
		total += r.Count
	}
	return &resp.BookingStats{
		Range:     rng.response(),
		Total:     total,
		ByStatus:  groupCounts(byStatus),
		ByClass:   groupCounts(byClass),
		ByWeekday: groupCounts(byDay),
	}, nil
}

func usernameOf(a *dbm.Account) string {
	if a == nil {
		return ""
	}
	return a.Username
}

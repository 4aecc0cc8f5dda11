package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	dbm "gymfit/internal/models/db_models"
	"gymfit/internal/repositories"
	"gymfit/pkg/export"
	"gymfit/pkg/utils"
)

type ReportType string

const (
	ReportUsers         ReportType = "users"
	ReportSales         ReportType = "sales"
	ReportSubscriptions ReportType = "subscriptions"
	ReportBookings      ReportType = "bookings"
)

func ParseReportType(s string) (ReportType, error) {
	switch t := ReportType(strings.ToLower(strings.TrimSpace(s))); t {
	case ReportUsers, ReportSales, ReportSubscriptions, ReportBookings:
		return t, nil
	}
	return "", utils.ErrInvalidReportType
}

// ReportFilter is the parsed query of an export. Status is lower-cased and
// empty when no status filter applies.
type ReportFilter struct {
	Range  DateRange
	Status string
	PlanID *uuid.UUID
}

// NewReportFilter never fails: bad dates use the default window and a
// malformed plan id is ignored.
func NewReportFilter(start, end, status, plan string, now time.Time) ReportFilter {
	f := ReportFilter{Range: ResolveDateRange(start, end, now)}
	if s := strings.ToLower(strings.TrimSpace(status)); s != "all" {
		f.Status = s
	}
	if id, err := uuid.Parse(strings.TrimSpace(plan)); err == nil {
		f.PlanID = &id
	}
	return f
}

// ExportFile is a fully rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type ReportService interface {
	Build(ctx context.Context, t ReportType, f ReportFilter) (*export.Table, error)
	Export(ctx context.Context, t ReportType, f ReportFilter, format export.Format) (*ExportFile, error)
}

type reportBuilder func(ctx context.Context, f ReportFilter) (*export.Table, error)

type reportService struct {
	repo     repositories.ReportRepository
	builders map[ReportType]reportBuilder
	now      func() time.Time
}

func NewReportService(repo repositories.ReportRepository) ReportService {
	s := &reportService{repo: repo, now: time.Now}
	s.builders = map[ReportType]reportBuilder{
		ReportUsers:         s.users,
		ReportSales:         s.sales,
		ReportSubscriptions: s.subscriptions,
		ReportBookings:      s.bookings,
	}
	return s
}

func (s *reportService) Build(ctx context.Context, t ReportType, f ReportFilter) (*export.Table, error) {
	build, ok := s.builders[t]
	if !ok {
		return nil, utils.ErrInvalidReportType
	}
	table, err := build(ctx, f)
	if err != nil {
		return nil, err
	}
	table.GeneratedAt = s.now().UTC()
	table.From, table.To = f.Range.From, f.Range.To
	return table, nil
}

func (s *reportService) Export(ctx context.Context, t ReportType, f ReportFilter, format export.Format) (*ExportFile, error) {
	table, err := s.Build(ctx, t, f)
	if err != nil {
		return nil, err
	}
	body, err := export.Render(*table, format)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidExportFormat) {
			return nil, err
		}
		return nil, dbFailure("render "+string(t)+" report", err)
	}
	return &ExportFile{
		Filename:    export.Filename(string(t), format, table.GeneratedAt),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (s *reportService) users(ctx context.Context, f ReportFilter) (*export.Table, error) {
	var active *bool
	switch f.Status {
	case "":
	case "active", "inactive":
		v := f.Status == "active"
		active = &v
	default:
		return nil, utils.ErrInvalidStatus
	}

	rows, err := s.repo.Accounts(ctx, f.Range.Unix(), active)
	if err != nil {
		return nil, dbFailure("load user report", err)
	}
	t := &export.Table{
		Title:   "User Report",
		Columns: []string{"ID", "Username", "Email", "Full Name", "Date Joined", "Last Login", "Active"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, a := range rows {
		lastLogin := "Never"
		if a.LastLoginAt != nil && *a.LastLoginAt > 0 {
			lastLogin = utils.FormatDateTime(*a.LastLoginAt)
		}
		t.Rows = append(t.Rows, []string{
			a.ID.String(),
			a.Username,
			a.Email,
			a.FullName(),
			utils.FormatDateTime(a.CreatedAt),
			lastLogin,
			yesNo(a.IsActive),
		})
	}
	return t, nil
}

func (s *reportService) sales(ctx context.Context, f ReportFilter) (*export.Table, error) {
	if f.Status != "" && !dbm.OrderStatus(f.Status).Valid() {
		return nil, utils.ErrInvalidStatus
	}
	rows, err := s.repo.Orders(ctx, f.Range.Unix(), f.Status)
	if err != nil {
		return nil, dbFailure("load sales report", err)
	}
	t := &export.Table{
		Title:   "Sales Report",
		Columns: []string{"Order ID", "User", "Total", "Payment Method", "Status", "Date"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, o := range rows {
		t.Rows = append(t.Rows, []string{
			o.ID.String(),
			usernameOf(o.Account),
			o.Total.StringFixed(2),
			string(o.PaymentMethod),
			string(o.Status),
			utils.FormatDateTime(o.CreatedAt),
		})
	}
	return t, nil
}

func (s *reportService) subscriptions(ctx context.Context, f ReportFilter) (*export.Table, error) {
	status := dbm.SubscriptionStatus(f.Status)
	switch status {
	case "", dbm.SubStatusActive, dbm.SubStatusExpired, dbm.SubStatusInactive:
	default:
		return nil, utils.ErrInvalidStatus
	}
	today := utils.StartOfDay(s.now()).Unix()
	rows, err := s.repo.Subscriptions(ctx, f.Range.Unix(), status, f.PlanID, today)
	if err != nil {
		return nil, dbFailure("load subscription report", err)
	}
	t := &export.Table{
		Title:   "Subscriptions Report",
		Columns: []string{"ID", "User", "Plan", "Price", "Start Date", "End Date", "Active"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, sub := range rows {
		plan, price := "", ""
		if sub.Plan != nil {
			plan, price = sub.Plan.Name, sub.Plan.Price.StringFixed(2)
		}
		t.Rows = append(t.Rows, []string{
			sub.ID.String(),
			usernameOf(sub.Account),
			plan,
			price,
			utils.FormatDate(sub.StartDate),
			utils.FormatDate(sub.EndDate),
			yesNo(sub.Active),
		})
	}
	return t, nil
}

func (s *reportService) bookings(ctx context.Context, f ReportFilter) (*export.Table, error) {
	status := ""
	if f.Status != "" {
		for _, st := range []dbm.BookingStatus{dbm.BookingBooked, dbm.BookingCancelled, dbm.BookingCompleted} {
			if strings.EqualFold(string(st), f.Status) {
				status = string(st)
			}
		}
		if status == "" {
			return nil, utils.ErrInvalidStatus
		}
	}
	rows, err := s.repo.Bookings(ctx, f.Range.Unix(), status)
	if err != nil {
		return nil, dbFailure("load booking report", err)
	}
	t := &export.Table{
		Title:   "Bookings Report",
		Columns: []string{"ID", "User", "Class", "Date", "Time", "Status"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, b := range rows {
		class, slot := "", ""
		if cs := b.ClassSchedule; cs != nil {
			slot = cs.Day + " " + cs.Time
			if cs.GymClass != nil {
				class = cs.GymClass.Name
			}
		}
		t.Rows = append(t.Rows, []string{
			b.ID.String(),
			usernameOf(b.Account),
			class,
			utils.FormatDate(b.BookingDate),
			slot,
			string(b.Status),
		})
	}
	return t, nil
}

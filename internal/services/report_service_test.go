package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
	"gymfit/internal/repositories"
	"gymfit/internal/testutil"
	"gymfit/pkg/export"
	"gymfit/pkg/utils"
)

var reportNow = time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)

func newTestReportService(db *gorm.DB) *reportService {
	svc := NewReportService(repositories.NewReportRepository(db)).(*reportService)
	svc.now = func() time.Time { return reportNow }
	return svc
}

func seedOrder(t *testing.T, db *gorm.DB, accountID uuid.UUID, total string, status db_models.OrderStatus, createdAt int64) *db_models.Order {
	t.Helper()
	o := &db_models.Order{
		AccountID:     accountID,
		Total:         decimal.RequireFromString(total),
		PaymentMethod: db_models.PaymentCard,
		Status:        status,
	}
	o.CreatedAt = createdAt
	require.NoError(t, db.Create(o).Error)
	return o
}

func TestSalesReportFiltersByRangeNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateAccount(t, db, "alice")

	seedOrder(t, db, alice.ID, "10", db_models.OrderStatusCompleted, testutil.At(2023, time.December, 31, 23))
	early := seedOrder(t, db, alice.ID, "20.5", db_models.OrderStatusCompleted, testutil.At(2024, time.January, 1, 0))
	late := seedOrder(t, db, alice.ID, "30", db_models.OrderStatusCompleted, testutil.At(2024, time.January, 31, 22))
	seedOrder(t, db, alice.ID, "40", db_models.OrderStatusCompleted, testutil.At(2024, time.February, 1, 0))

	svc := newTestReportService(db)
	f := NewReportFilter("2024-01-01", "2024-01-31", "", "", reportNow)

	table, err := svc.Build(context.Background(), ReportSales, f)
	require.NoError(t, err)
	assert.Equal(t, "Sales Report", table.Title)
	assert.Equal(t, "Date Range: 2024-01-01 to 2024-01-31", table.RangeLine())
	assert.Equal(t, []string{"Order ID", "User", "Total", "Payment Method", "Status", "Date"}, table.Columns)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{late.ID.String(), "alice", "30.00", "card", "completed", "2024-01-31 22:00:00"}, table.Rows[0])
	assert.Equal(t, early.ID.String(), table.Rows[1][0])
	assert.Equal(t, "20.50", table.Rows[1][2])
}

func TestSalesReportRejectsUnknownStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newTestReportService(db)

	_, err := svc.Build(context.Background(), ReportSales, NewReportFilter("", "", "refunded", "", reportNow))
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)

	_, err = svc.Build(context.Background(), ReportType("inventory"), NewReportFilter("", "", "", "", reportNow))
	assert.ErrorIs(t, err, utils.ErrInvalidReportType)
}

func TestExportCSVDownload(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateAccount(t, db, "alice")
	seedOrder(t, db, alice.ID, "12.5", db_models.OrderStatusCompleted, testutil.At(2024, time.February, 10, 9))

	svc := newTestReportService(db)
	file, err := svc.Export(context.Background(), ReportSales, NewReportFilter("", "", "all", "", reportNow), export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "sales_report_20240215.csv", file.Filename)
	assert.Equal(t, export.FormatCSV.ContentType(), file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Order ID", records[0][0])
	assert.Equal(t, "12.50", records[1][2])

	_, err = svc.Export(context.Background(), ReportSales, NewReportFilter("", "", "", "", reportNow), export.Format("doc"))
	assert.ErrorIs(t, err, utils.ErrInvalidExportFormat)
}

func TestBookingsReportStatusIsCaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateAccount(t, db, "alice")
	yoga := testutil.CreateSchedule(t, db, "Yoga", "Monday", "07:00")

	for _, st := range []db_models.BookingStatus{db_models.BookingBooked, db_models.BookingCancelled} {
		b := &db_models.ClassBooking{
			AccountID:       alice.ID,
			ClassScheduleID: yoga.ID,
			BookingDate:     testutil.At(2024, time.February, 12, 0),
			Status:          st,
		}
		b.CreatedAt = testutil.At(2024, time.February, 5, 10)
		require.NoError(t, db.Create(b).Error)
	}

	svc := newTestReportService(db)
	table, err := svc.Build(context.Background(), ReportBookings, NewReportFilter("2024-02-01", "2024-02-15", "cancelled", "", reportNow))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"alice", "Yoga", "2024-02-12", "Monday 07:00", "Cancelled"}, table.Rows[0][1:])
}

func TestNewReportFilterFailsOpen(t *testing.T) {
	f := NewReportFilter("not-a-date", "", "ALL", "nope", reportNow)
	assert.Equal(t, LastDays(reportNow, 30), f.Range)
	assert.Empty(t, f.Status)
	assert.Nil(t, f.PlanID)

	f = NewReportFilter("2024-03-01", "2024-01-01", "Active", uuid.Nil.String(), reportNow)
	assert.Equal(t, "2024-01-01", f.Range.From.Format(utils.DateLayout))
	assert.Equal(t, "2024-03-01", f.Range.To.Format(utils.DateLayout))
	assert.Equal(t, "active", f.Status)
	require.NotNil(t, f.PlanID)
}

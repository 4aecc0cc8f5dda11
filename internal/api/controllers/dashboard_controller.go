package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gymfit/internal/services"
	"gymfit/pkg/export"
	"gymfit/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
	reportService    services.ReportService
	now              func() time.Time
}

func NewDashboardController(dashboardService services.DashboardService, reportService services.ReportService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		reportService:    reportService,
		now:              time.Now,
	}
}

// GetDashboard godoc
// @Summary Admin dashboard
// @Description Totals, 30-day daily sales and subscription revenue, five most recent orders, accounts and subscriptions
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /admin/dashboard [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	report, err := p.dashboardService.Dashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Dashboard retrieved successfully")
}

// GetOverview godoc
// @Summary Reports overview
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param date_range query int false "7, 30, 90 or 365 days" default(30)
// @Success 200 {object} utils.APIResponse
// @Router /admin/reports [get]
func (p *DashboardController) GetOverview(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("date_range", "30"))
	if err != nil {
		days = 30
	}
	overview, err := p.dashboardService.Overview(c.Request.Context(), days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, overview, "Overview retrieved successfully")
}

// GetStats godoc
// @Summary Statistics for one report type
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param type path string true "users | sales | subscriptions | bookings"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/reports/{type}/stats [get]
func (p *DashboardController) GetStats(c *gin.Context) {
	kind, err := services.ParseReportType(c.Param("type"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	rng := services.ResolveDateRange(c.Query("start_date"), c.Query("end_date"), p.now())
	ctx := c.Request.Context()

	var data interface{}
	switch kind {
	case services.ReportUsers:
		data, err = p.dashboardService.UserStats(ctx, rng)
	case services.ReportSales:
		data, err = p.dashboardService.SalesStats(ctx, rng)
	case services.ReportSubscriptions:
		data, err = p.dashboardService.SubscriptionStats(ctx, rng)
	case services.ReportBookings:
		data, err = p.dashboardService.BookingStats(ctx, rng)
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, data, "Statistics retrieved successfully")
}

// ExportReport godoc
// @Summary Download a report
// @Description Renders the report as an attachment. Errors before rendering use the JSON envelope.
// @Tags Dashboard
// @Produce text/csv
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param type path string true "users | sales | subscriptions | bookings"
// @Param format query string false "csv | pdf | xlsx" default(csv)
// @Param start_date query string false "YYYY-MM-DD, defaults to 30 days ago"
// @Param end_date query string false "YYYY-MM-DD, defaults to today"
// @Param status query string false "Status filter, 'all' for none"
// @Param plan query string false "Plan ID (subscriptions only)"
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Router /admin/reports/{type}/export [get]
func (p *DashboardController) ExportReport(c *gin.Context) {
	kind, err := services.ParseReportType(c.Param("type"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	filter := services.NewReportFilter(c.Query("start_date"), c.Query("end_date"), c.Query("status"), c.Query("plan"), p.now())

	file, err := p.reportService.Export(c.Request.Context(), kind, filter, format)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, file.ContentType, file.Body)
}

package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
	"gymfit/internal/repositories"
	"gymfit/internal/services"
	"gymfit/internal/testutil"
	"gymfit/pkg/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// as stands in for JWTAuthMiddleware.
func as(id middleware.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(middleware.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "" && w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func cartRouter(db *gorm.DB, who middleware.Identity) *gin.Engine {
	h := NewCartController(services.NewCartService(repositories.NewCartRepository(db)))
	r := gin.New()
	g := r.Group("", as(who))
	g.GET("/cart", h.GetCart)
	g.POST("/cart/items", h.AddToCart)
	g.PUT("/cart/items/:id", h.UpdateCartItem)
	g.GET("/api/cart", h.AjaxCart)
	return r
}

func TestCartEndpoints(t *testing.T) {
	db := testutil.NewTestDB(t)
	acc := testutil.CreateAccount(t, db, "alice")
	cat := testutil.CreateCategory(t, db, "Gear")
	p := testutil.CreateProduct(t, db, cat.ID, "Chalk", "6.00", 1)
	r := cartRouter(db, middleware.Identity{AccountID: acc.ID, Role: db_models.RoleUser})

	w, env := call(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": p.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var cart struct {
		Count int `json:"count"`
		Items []struct {
			ID uuid.UUID `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, 1, cart.Count)
	require.Len(t, cart.Items, 1)

	w, env = call(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": p.ID})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "error", env.Status)

	w, _ = call(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = call(t, r, http.MethodPut, "/cart/items/not-a-uuid", gin.H{"quantity": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = call(t, r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ajax struct {
		Success bool `json:"success"`
		Items   []json.RawMessage
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ajax))
	assert.True(t, ajax.Success)
	assert.Len(t, ajax.Items, 1)
}

func TestCartRequiresIdentity(t *testing.T) {
	db := testutil.NewTestDB(t)
	h := NewCartController(services.NewCartService(repositories.NewCartRepository(db)))
	r := gin.New()
	r.GET("/cart", h.GetCart)

	w, _ := call(t, r, http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminCategoryEndpoints(t *testing.T) {
	db := testutil.NewTestDB(t)
	staff := testutil.CreateAccount(t, db, "staff")
	resources := services.NewAdminResources(
		db,
		repositories.NewAccountRepository(db),
		repositories.NewActivityRepository(db),
		repositories.NewNotificationRepository(db),
	)

	r := gin.New()
	admin := r.Group("/admin", as(middleware.Identity{AccountID: staff.ID, Role: db_models.RoleStaff}))
	NewAdminController(resources).Register(admin)

	w, env := call(t, r, http.MethodPost, "/admin/categories", gin.H{"name": "Recovery"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Category created successfully", env.Message)
	var created db_models.Category
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, _ = call(t, r, http.MethodPost, "/admin/categories", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = call(t, r, http.MethodGet, "/admin/categories?search=recov", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.EqualValues(t, 1, page.Total)

	w, _ = call(t, r, http.MethodGet, "/admin/categories?page=zero", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = call(t, r, http.MethodDelete, "/admin/categories/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = call(t, r, http.MethodGet, "/admin/categories/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var logged int64
	require.NoError(t, db.Model(&db_models.AdminActivity{}).Where("account_id = ?", staff.ID).Count(&logged).Error)
	assert.EqualValues(t, 2, logged)
}

func reportRouter(db *gorm.DB, who middleware.Identity) *gin.Engine {
	reports := repositories.NewReportRepository(db)
	h := NewDashboardController(
		services.NewDashboardService(repositories.NewDashboardRepository(db), reports, repositories.NewNotificationRepository(db)),
		services.NewReportService(reports),
	)
	r := gin.New()
	admin := r.Group("/admin", as(who), middleware.RoleMiddleware(db_models.RoleStaff))
	admin.GET("/reports/:type/export", h.ExportReport)
	return r
}

func TestExportReportDownload(t *testing.T) {
	db := testutil.NewTestDB(t)
	staff := testutil.CreateAccount(t, db, "staff")
	alice := testutil.CreateAccount(t, db, "alice")
	order := &db_models.Order{
		AccountID:     alice.ID,
		Total:         decimal.RequireFromString("12.5"),
		PaymentMethod: db_models.PaymentUPI,
		Status:        db_models.OrderStatusCompleted,
	}
	order.CreatedAt = testutil.At(2024, 1, 15, 10)
	require.NoError(t, db.Create(order).Error)

	r := reportRouter(db, middleware.Identity{AccountID: staff.ID, Role: db_models.RoleStaff})

	w, _ := call(t, r, http.MethodGet, "/admin/reports/sales/export?format=csv&start_date=2024-01-01&end_date=2024-01-31", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename="sales_report_\d{8}\.csv"$`, w.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Order ID,User,Total,Payment Method,Status,Date", lines[0])
	assert.Equal(t, order.ID.String()+",alice,12.50,upi,completed,2024-01-15 10:00:00", lines[1])

	w, env := call(t, r, http.MethodGet, "/admin/reports/sales/export?format=docx", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", env.Status)
	assert.Empty(t, w.Header().Get("Content-Disposition"))

	w, env = call(t, r, http.MethodGet, "/admin/reports/invoices/export", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", env.Status)

	w, _ = call(t, r, http.MethodGet, "/admin/reports/users/export?format=xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Regexp(t, `filename="users_report_\d{8}\.xlsx"`, w.Header().Get("Content-Disposition"))
}

func TestExportReportRequiresStaff(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateAccount(t, db, "alice")
	r := reportRouter(db, middleware.Identity{AccountID: alice.ID, Role: db_models.RoleUser})

	w, env := call(t, r, http.MethodGet, "/admin/reports/sales/export?format=csv", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "error", env.Status)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

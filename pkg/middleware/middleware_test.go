package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymfit/internal/models/db_models"
	"gymfit/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func whoAmI(c *gin.Context) {
	id, ok := CurrentIdentity(c)
	if !ok {
		c.Status(http.StatusTeapot)
		return
	}
	c.String(http.StatusOK, id.AccountID.String()+"|"+id.Role)
}

func TestJWTAuthAndRole(t *testing.T) {
	jwt := utils.NewJWTManager("secret", time.Minute)
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(jwt), whoAmI)
	r.GET("/admin", JWTAuthMiddleware(jwt), RoleMiddleware(db_models.RoleStaff), whoAmI)

	member := uuid.New()
	memberToken, err := jwt.CreateToken(member, db_models.RoleUser)
	require.NoError(t, err)
	staffToken, err := jwt.CreateToken(uuid.New(), db_models.RoleStaff)
	require.NoError(t, err)

	do := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, do("/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do("/me", "not-a-token").Code)

	w := do("/me", memberToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, member.String()+"|user", w.Body.String())

	assert.Equal(t, http.StatusForbidden, do("/admin", memberToken).Code)
	assert.Equal(t, http.StatusOK, do("/admin", staffToken).Code)
}

func TestRateLimitWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.POST("/contact", RateLimitMiddleware(RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		KeyStrategy:    "ip_route",
		Prefix:         "rl",
	}, rdb), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "203.0.113.9:5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = "198.51.100.1:5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimitFailsOpenWithoutRedis(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimitMiddleware(RateLimitConfig{Enabled: true, Capacity: 1}, nil), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestSanitizeInputStripsMarkup(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", body)
	})

	payload := `{"name":"<b>Sam</b> & Co","message":"<script>alert(1)</script>hi","password":"<keep>","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Sam & Co", got["name"])
	assert.Equal(t, "hi", got["message"])
	assert.Equal(t, "<keep>", got["password"])
	assert.EqualValues(t, 2, got["quantity"])
}

func TestTraceIDIsEchoed(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Body.String())
	assert.Equal(t, id, w.Header().Get("X-Trace-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
}

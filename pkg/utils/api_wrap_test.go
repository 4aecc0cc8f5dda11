package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		ErrProductNotFound:                       http.StatusNotFound,
		ErrInsufficientStock:                     http.StatusConflict,
		fmt.Errorf("checkout: %w", ErrEmptyCart): http.StatusConflict,
		ErrInvalidExportFormat:                   http.StatusBadRequest,
		ErrInvalidCredentials:                    http.StatusUnauthorized,
		ErrMailUnavailable:                       http.StatusServiceUnavailable,
		fmt.Errorf("%w: list", ErrDatabaseError): http.StatusInternalServerError,
		errors.New("boom"):                       http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, StatusFor(err), err.Error())
	}
}

func TestHandleServiceErrorHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		err     error
		code    int
		message string
	}{
		{ErrOutOfStock, http.StatusConflict, ErrOutOfStock.Error()},
		{fmt.Errorf("%w: orders table", ErrDatabaseError), http.StatusInternalServerError, "Internal server error"},
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("trace_id", "trace-1")

		HandleServiceError(c, tc.err)

		require.Equal(t, tc.code, w.Code)
		var body APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, tc.message, body.Message)
		assert.Equal(t, "trace-1", body.TraceID)
	}
}

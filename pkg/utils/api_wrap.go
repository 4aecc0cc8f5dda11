package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDOf(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
	})
}

// errorStatuses maps sentinel errors to HTTP status codes. Order matters only
// for errors wrapping more than one sentinel.
var errorStatuses = []struct {
	err  error
	code int
}{
	{RecordNotFound, http.StatusNotFound},
	{ErrAccountNotFound, http.StatusNotFound},
	{ErrProductNotFound, http.StatusNotFound},
	{ErrCategoryNotFound, http.StatusNotFound},
	{ErrCartItemNotFound, http.StatusNotFound},
	{ErrOrderNotFound, http.StatusNotFound},
	{ErrPlanNotFound, http.StatusNotFound},
	{ErrSubscriptionNotFound, http.StatusNotFound},
	{ErrScheduleNotFound, http.StatusNotFound},
	{ErrBookingNotFound, http.StatusNotFound},
	{ErrWorkoutNotFound, http.StatusNotFound},
	{ErrPostNotFound, http.StatusNotFound},
	{ErrContactMessageNotFound, http.StatusNotFound},
	{ErrNotificationNotFound, http.StatusNotFound},

	{ErrOutOfStock, http.StatusConflict},
	{ErrInsufficientStock, http.StatusConflict},
	{ErrEmptyCart, http.StatusConflict},
	{ErrDuplicateBooking, http.StatusConflict},
	{ErrEmailAlreadyExists, http.StatusConflict},
	{ErrUsernameAlreadyExists, http.StatusConflict},
	{ErrNewsletterExists, http.StatusConflict},
	{ErrDuplicateRecord, http.StatusConflict},

	{ErrInvalidPage, http.StatusBadRequest},
	{ErrInvalidPageSize, http.StatusBadRequest},
	{ErrInvalidInput, http.StatusBadRequest},
	{ErrInvalidQuantity, http.StatusBadRequest},
	{ErrInvalidPaymentMethod, http.StatusBadRequest},
	{ErrInvalidBookingTransition, http.StatusBadRequest},
	{ErrInvalidDate, http.StatusBadRequest},
	{ErrInvalidReportType, http.StatusBadRequest},
	{ErrInvalidExportFormat, http.StatusBadRequest},
	{ErrInvalidStatus, http.StatusBadRequest},
	{ErrPasswordRequired, http.StatusBadRequest},
	{ErrInvalidResetToken, http.StatusBadRequest},

	{ErrInvalidCredentials, http.StatusUnauthorized},
	{ErrAccountInactive, http.StatusForbidden},
	{ErrForbidden, http.StatusForbidden},
	{ErrMailUnavailable, http.StatusServiceUnavailable},
}

// StatusFor returns the HTTP status code for a service error.
func StatusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return http.StatusInternalServerError
}

func HandleServiceError(c *gin.Context, err error) {
	code := StatusFor(err)
	if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
		if errors.Is(err, ErrDatabaseError) {
			log.Printf("Database error: %v", err)
		} else {
			log.Printf("Unknown error: %v", err)
		}
		RespondError(c, code, "Internal server error")
		return
	}

	RespondError(c, code, err.Error())
}

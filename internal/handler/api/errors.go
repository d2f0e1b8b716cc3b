package api

import (
	"errors"
	"net/http"

	"lounge-pos/internal/handler/httperr"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/usecase/commands"
	"lounge-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var errInvalidID = errors.New("invalid id")

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// ordered: first match wins
var errorMappings = []errorMapping{
	{commands.ErrDeviceNotFound, http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found"},
	{commands.ErrDrinkNotFound, http.StatusNotFound, "DRINK_NOT_FOUND", "Drink not found"},
	{commands.ErrReservationNotFound, http.StatusNotFound, "RESERVATION_NOT_FOUND", "Reservation not found"},
	{commands.ErrDeviceRunning, http.StatusConflict, "DEVICE_RUNNING", "Device is running"},
	{commands.ErrDeviceNotRunning, http.StatusConflict, "DEVICE_NOT_RUNNING", "Device is not running"},
	{commands.ErrModeLocked, http.StatusConflict, "MODE_LOCKED", "Mode cannot change while a session is running"},
	{commands.ErrInvalidDevice, http.StatusBadRequest, "INVALID_DEVICE", "Invalid device"},
	{commands.ErrInvalidDrink, http.StatusBadRequest, "INVALID_DRINK", "Invalid drink"},
	{commands.ErrInvalidReservation, http.StatusBadRequest, "INVALID_RESERVATION", "Invalid reservation"},
	{commands.ErrInvalidPricing, http.StatusBadRequest, "INVALID_PRICING", "Hourly rates must be positive"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "INVALID_CURSOR", "Invalid cursor"},
	{queries.ErrInvalidDate, http.StatusBadRequest, "INVALID_DATE", "Date must be YYYY-MM-DD"},
}

func abortWithMappedError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, err, httperr.New(m.status, m.code, m.message))
			return
		}
	}
	httperr.AbortWithError(c, err, httperr.New(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"))
}

type fieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// abortBadRequest reports binding failures; validator errors list the failing fields.
func abortBadRequest(c *gin.Context, err error) {
	resp := httperr.New(http.StatusBadRequest, httperr.CodeInvalidRequest, "Invalid request")

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		violations := make([]fieldViolation, 0, len(ve))
		for _, fe := range ve {
			violations = append(violations, fieldViolation{Field: fe.Field(), Rule: fe.Tag()})
		}
		resp.Detail = violations
	}

	httperr.AbortWithError(c, err, resp)
}

package api

import (
	"net/http"

	"kost-booking/internal/handler/httperr"
	"kost-booking/internal/pkg/errs"
	"kost-booking/internal/usecase/commands"
	"kost-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// first match wins
var errorMappings = []errorMapping{
	{errs.ErrFlowNotFound, http.StatusNotFound, "Booking flow not found"},
	{errs.ErrPropertyNotFound, http.StatusNotFound, "Property not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrPropertyUnavailable, http.StatusConflict, "Property is not available"},
	{errs.ErrInvalidDuration, http.StatusBadRequest, "Duration must be at least 1"},
	{errs.ErrInvalidCheckIn, http.StatusBadRequest, "Check-in date cannot be in the past"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid booking details"},
	{errs.ErrDraftLocked, http.StatusConflict, "Booking details cannot be changed in the current step"},
	{errs.ErrIllegalTransition, http.StatusConflict, "Action not allowed in the current step"},
	{errs.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
	{errs.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{commands.ErrShuttingDown, http.StatusServiceUnavailable, "Service is shutting down"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

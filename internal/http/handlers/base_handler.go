// README: Shared JSON helpers and module-error to status mapping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GroupB-499/RidePSUBackend/internal/modules/booking"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/notify"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/place"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/rating"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/ride"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/schedule"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// writeModuleError maps the module error taxonomy to HTTP statuses:
// validation → 400, not-found → 404, conflict → 409 (with the full conflict
// set), everything else → 500.
func writeModuleError(c *gin.Context, err error) {
	var assignConflict *schedule.AssignConflictError
	switch {
	case errors.As(err, &assignConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":     assignConflict.Error(),
			"conflicts": assignConflict.Conflicts,
		})
	case errors.Is(err, schedule.ErrTimeSlotTaken):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, schedule.ErrMissingFields),
		errors.Is(err, schedule.ErrInvalidTime),
		errors.Is(err, schedule.ErrInvalidTransportType),
		errors.Is(err, booking.ErrMissingFields),
		errors.Is(err, notify.ErrMissingFields),
		errors.Is(err, place.ErrMissingFields),
		errors.Is(err, rating.ErrMissingFields):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, schedule.ErrNotFound),
		errors.Is(err, booking.ErrNoMatchingSchedule),
		errors.Is(err, booking.ErrNoBookings),
		errors.Is(err, ride.ErrNoRide),
		errors.Is(err, rating.ErrNoRatings):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

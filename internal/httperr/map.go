package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/domain/booking"
	"github.com/glowdesk/salon-scheduler/internal/store"
)

// FromError maps the core's error kinds onto HTTP responses:
// guard failures to 400, missing ids to 404, double-booked slots to 409
// and anything else (transport failures included) to 500. Nothing is
// swallowed; unknown errors keep their message.
func FromError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	switch {
	case errors.As(err, &vErr):
		BadRequest(c, "validation_error", vErr.Error())
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, "appointment_not_found", "Appointment not found.")
	case errors.Is(err, store.ErrConflict):
		Conflict(c, "slot_conflict", "That slot is no longer available, please pick another.")
	default:
		Internal(c, "transport_error", err.Error())
	}
}

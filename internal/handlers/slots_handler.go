package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/glowdesk/salon-scheduler/internal/domain/booking"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	ucBooking "github.com/glowdesk/salon-scheduler/internal/usecase/booking"
)

type SlotsHandler struct {
	freeSlots *ucBooking.GetFreeSlots
}

func NewSlotsHandler(freeSlots *ucBooking.GetFreeSlots) *SlotsHandler {
	return &SlotsHandler{freeSlots: freeSlots}
}

// ListSlots returns the full daily grid, independent of bookings.
func (h *SlotsHandler) ListSlots(c *gin.Context) {
	httpresp.List(c, domain.GenerateTimeSlots())
}

// Availability returns the open slots for a staff member on a date.
func (h *SlotsHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	staffID := c.Query("staff_id")
	if date == "" || staffID == "" {
		httperr.BadRequest(c, "invalid_request", "date and staff_id are required.")
		return
	}

	slots, err := h.freeSlots.Execute(c.Request.Context(), date, staffID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, slots)
}

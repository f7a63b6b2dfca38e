package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	ucBooking "github.com/glowdesk/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listUpcoming *ucBooking.ListUpcoming
	reschedule   *ucBooking.RescheduleAppointment
	cancel       *ucBooking.CancelAppointment
}

func NewAppointmentHandler(
	listUpcoming *ucBooking.ListUpcoming,
	reschedule *ucBooking.RescheduleAppointment,
	cancel *ucBooking.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		listUpcoming: listUpcoming,
		reschedule:   reschedule,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAppointmentRequest struct {
	Date  *string `json:"date"`
	Time  *string `json:"time"`
	Notes *string `json:"notes"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) ListUpcoming(c *gin.Context) {
	appts, err := h.listUpcoming.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, appts)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	appt, err := h.reschedule.Execute(c.Request.Context(), c.Param("id"), ucBooking.RescheduleInput{
		Date:  req.Date,
		Time:  req.Time,
		Notes: req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, appt)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.cancel.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"id": id, "deleted": true})
}

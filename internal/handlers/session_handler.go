package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	domain "github.com/glowdesk/salon-scheduler/internal/domain/booking"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/sessions"
	"github.com/glowdesk/salon-scheduler/internal/weather"
)

// ======================================================
// HANDLER
// ======================================================

// SessionHandler drives the multi-step booking flow. Each step maps to a
// session transition; guard failures come back as validation errors with
// the session state unchanged.
type SessionHandler struct {
	manager *sessions.Manager
	weather *weather.Client
	audit   *audit.Dispatcher
}

func NewSessionHandler(manager *sessions.Manager, weather *weather.Client, audit *audit.Dispatcher) *SessionHandler {
	return &SessionHandler{
		manager: manager,
		weather: weather,
		audit:   audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SelectServicesRequest struct {
	ServiceIDs []string `json:"service_ids" binding:"required"`
}

type SelectStaffRequest struct {
	StaffID string `json:"staff_id" binding:"required"`
}

type SelectSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type ClientInfoRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email"`
	Notes      string `json:"notes"`
}

// ======================================================
// RESPONSES
// ======================================================

type SessionStateResponse struct {
	ID    string        `json:"id"`
	State domain.State  `json:"state"`
	Draft DraftResponse `json:"draft"`
}

type DraftResponse struct {
	Services      []models.Service    `json:"services"`
	Staff         *models.StaffMember `json:"staff,omitempty"`
	Date          string              `json:"date,omitempty"`
	Time          string              `json:"time,omitempty"`
	ClientName    string              `json:"client_name,omitempty"`
	Phone         string              `json:"phone,omitempty"`
	Email         string              `json:"email,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	TotalPrice    float64             `json:"total_price"`
	TotalDuration int                 `json:"total_duration"`
}

type ConfirmResponse struct {
	Appointment models.Appointment `json:"appointment"`
	WeatherTips []string           `json:"weather_tips"`
}

func stateResponse(id string, sess *domain.Session) SessionStateResponse {
	draft := sess.Draft()
	return SessionStateResponse{
		ID:    id,
		State: sess.State(),
		Draft: DraftResponse{
			Services:      draft.Services,
			Staff:         draft.Staff,
			Date:          draft.Date,
			Time:          draft.Time,
			ClientName:    draft.ClientName,
			Phone:         draft.Phone,
			Email:         draft.Email,
			Notes:         draft.Notes,
			TotalPrice:    draft.TotalPrice,
			TotalDuration: draft.TotalDuration,
		},
	}
}

// ======================================================
// HANDLERS
// ======================================================

func (h *SessionHandler) Start(c *gin.Context) {
	id, sess := h.manager.Start()
	httpresp.Created(c, stateResponse(id, sess))
}

func (h *SessionHandler) Get(c *gin.Context) {
	id := c.Param("id")
	sess, ok := h.manager.Get(id)
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}
	httpresp.OK(c, stateResponse(id, sess))
}

func (h *SessionHandler) SelectServices(c *gin.Context) {
	id := c.Param("id")
	sess, ok := h.manager.Get(id)
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	var req SelectServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := sess.SelectServices(req.ServiceIDs); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, stateResponse(id, sess))
}

func (h *SessionHandler) SelectStaff(c *gin.Context) {
	id := c.Param("id")
	sess, ok := h.manager.Get(id)
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	var req SelectStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := sess.SelectStaff(c.Request.Context(), req.StaffID); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, stateResponse(id, sess))
}

func (h *SessionHandler) SelectSlot(c *gin.Context) {
	id := c.Param("id")
	sess, ok := h.manager.Get(id)
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	var req SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := sess.SelectSlot(c.Request.Context(), req.Date, req.Time); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, stateResponse(id, sess))
}

func (h *SessionHandler) EnterClientInfo(c *gin.Context) {
	id := c.Param("id")
	sess, ok := h.manager.Get(id)
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	var req ClientInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Client name and phone are required.")
		return
	}

	if err := sess.EnterClientInfo(req.ClientName, req.Phone, req.Email, req.Notes); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, stateResponse(id, sess))
}

func (h *SessionHandler) Confirm(c *gin.Context) {
	id := c.Param("id")
	sess, ok := h.manager.Get(id)
	if !ok {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}

	_, alreadyFinalized := sess.Created()

	appt, err := sess.Confirm(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	// A repeat confirm replays the stored appointment; only the confirm
	// that actually created it is audited.
	if !alreadyFinalized {
		h.audit.Dispatch(audit.Event{
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: appt.ID,
		})
	}

	cond := h.weather.Current(c.Request.Context())
	tips := weather.Tips(cond, strings.Split(appt.ServiceNames, ", "), appt.Time)

	httpresp.OK(c, ConfirmResponse{
		Appointment: appt,
		WeatherTips: tips,
	})
}

func (h *SessionHandler) Abandon(c *gin.Context) {
	id := c.Param("id")
	if !h.manager.Abandon(id) {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return
	}
	httpresp.OK(c, gin.H{"id": id, "abandoned": true})
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/handlers"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/refdata"
	"github.com/glowdesk/salon-scheduler/internal/sessions"
	"github.com/glowdesk/salon-scheduler/internal/store"
	ucBooking "github.com/glowdesk/salon-scheduler/internal/usecase/booking"
	"github.com/glowdesk/salon-scheduler/internal/weather"
)

type Deps struct {
	Repo    store.Repository
	Catalog refdata.Source
	Audit   *audit.Dispatcher
	Weather *weather.Client
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// SESSIONS
	// ======================================================
	sessionManager := sessions.NewManager(deps.Catalog, deps.Repo, nil)

	// ======================================================
	// USE CASES
	// ======================================================
	listUpcomingUC := ucBooking.NewListUpcoming(deps.Repo, nil)
	freeSlotsUC := ucBooking.NewGetFreeSlots(deps.Repo, deps.Catalog)
	cancelUC := ucBooking.NewCancelAppointment(deps.Repo, deps.Audit)
	rescheduleUC := ucBooking.NewRescheduleAppointment(deps.Repo, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	slotsHandler := handlers.NewSlotsHandler(freeSlotsUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		listUpcomingUC,
		rescheduleUC,
		cancelUC,
	)
	sessionHandler := handlers.NewSessionHandler(sessionManager, deps.Weather, deps.Audit)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// REFERENCE DATA
		// ------------------------------
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/services/:id", catalogHandler.GetService)
		api.GET("/staff", catalogHandler.ListStaff)
		api.GET("/staff/:id", catalogHandler.GetStaffMember)

		// ------------------------------
		// SLOTS / AVAILABILITY
		// ------------------------------
		api.GET("/slots", slotsHandler.ListSlots)
		api.GET("/availability", slotsHandler.Availability)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.ListUpcoming)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// BOOKING SESSIONS
		// ------------------------------
		sessionsAPI := api.Group("/sessions")
		{
			sessionsAPI.POST("", sessionHandler.Start)
			sessionsAPI.GET("/:id", sessionHandler.Get)
			sessionsAPI.PUT("/:id/services", sessionHandler.SelectServices)
			sessionsAPI.PUT("/:id/staff", sessionHandler.SelectStaff)
			sessionsAPI.PUT("/:id/slot", sessionHandler.SelectSlot)
			sessionsAPI.PUT("/:id/client", sessionHandler.EnterClientInfo)
			sessionsAPI.POST("/:id/confirm", sessionHandler.Confirm)
			sessionsAPI.DELETE("/:id", sessionHandler.Abandon)
		}
	}
}

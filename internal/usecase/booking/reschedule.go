package booking

import (
	"context"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	domain "github.com/glowdesk/salon-scheduler/internal/domain/booking"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/store"
)

type RescheduleInput struct {
	Date  *string
	Time  *string
	Notes *string
}

// RescheduleAppointment merges a partial update into an existing
// appointment. The store re-validates the slot uniqueness invariant, so a
// move onto a taken slot surfaces as store.ErrConflict.
type RescheduleAppointment struct {
	repo  store.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(repo store.Repository, audit *audit.Dispatcher) *RescheduleAppointment {
	return &RescheduleAppointment{repo: repo, audit: audit}
}

func (uc *RescheduleAppointment) Execute(ctx context.Context, id string, in RescheduleInput) (models.Appointment, error) {
	if in.Date != nil {
		if _, err := time.Parse("2006-01-02", *in.Date); err != nil {
			return models.Appointment{}, domain.NewValidationError("invalid date, expected YYYY-MM-DD")
		}
	}
	if in.Time != nil && !domain.IsOfferedSlot(*in.Time) {
		return models.Appointment{}, domain.NewValidationError("time is not an offered slot")
	}

	appt, err := uc.repo.Update(ctx, id, store.Fields{
		Date:  in.Date,
		Time:  in.Time,
		Notes: in.Notes,
	})
	if err != nil {
		return models.Appointment{}, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: appt.ID,
	})

	return appt, nil
}

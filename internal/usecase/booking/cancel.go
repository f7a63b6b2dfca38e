package booking

import (
	"context"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/store"
)

type CancelAppointment struct {
	repo  store.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(repo store.Repository, audit *audit.Dispatcher) *CancelAppointment {
	return &CancelAppointment{repo: repo, audit: audit}
}

func (uc *CancelAppointment) Execute(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: id,
	})

	return nil
}

package booking

import (
	"context"
	"time"

	domain "github.com/glowdesk/salon-scheduler/internal/domain/booking"
	"github.com/glowdesk/salon-scheduler/internal/refdata"
	"github.com/glowdesk/salon-scheduler/internal/store"
)

// GetFreeSlots lists the daily grid minus the slots already booked for the
// staff member on the given date.
type GetFreeSlots struct {
	repo    store.Repository
	catalog refdata.Source
}

func NewGetFreeSlots(repo store.Repository, catalog refdata.Source) *GetFreeSlots {
	return &GetFreeSlots{repo: repo, catalog: catalog}
}

func (uc *GetFreeSlots) Execute(ctx context.Context, date, staffID string) ([]string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, domain.NewValidationError("invalid date, expected YYYY-MM-DD")
	}
	if _, ok := uc.catalog.StaffMember(staffID); !ok {
		return nil, domain.NewValidationError("unknown staff member: " + staffID)
	}

	appts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(date, staffID, appts), nil
}

package booking

import (
	"context"
	"errors"
	"testing"

	domain "github.com/glowdesk/salon-scheduler/internal/domain/booking"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/refdata"
	"github.com/glowdesk/salon-scheduler/internal/store/memory"
)

func testCatalog() *refdata.Catalog {
	return refdata.New(
		[]models.Service{
			{ID: "svc-haircut", Name: "Haircut", Price: 40, DurationMin: 30},
		},
		[]models.StaffMember{
			{ID: "stf-1", Name: "Staff One", ServiceIDs: []string{"svc-haircut"}},
		},
	)
}

func TestGetFreeSlots_ExcludesBookedSlots(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	seed(t, s, "stf-1", "2026-09-04", "09:00")
	seed(t, s, "stf-1", "2026-09-04", "13:00")

	uc := NewGetFreeSlots(s, testCatalog())
	slots, err := uc.Execute(ctx, "2026-09-04", "stf-1")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(slots) != 16 {
		t.Fatalf("len(slots) = %d, want 16", len(slots))
	}
	for _, tod := range slots {
		if tod == "09:00" || tod == "13:00" {
			t.Fatalf("booked slot %q offered", tod)
		}
	}
}

func TestGetFreeSlots_ValidatesInput(t *testing.T) {
	ctx := context.Background()
	uc := NewGetFreeSlots(memory.New(), testCatalog())

	var vErr *domain.ValidationError
	if _, err := uc.Execute(ctx, "bad-date", "stf-1"); !errors.As(err, &vErr) {
		t.Fatalf("bad date: error type = %T, want *ValidationError", err)
	}
	if _, err := uc.Execute(ctx, "2026-09-04", "stf-unknown"); !errors.As(err, &vErr) {
		t.Fatalf("unknown staff: error type = %T, want *ValidationError", err)
	}
}

package booking

import (
	"testing"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

func TestIsAvailable_FalseOnlyOnExactTripleMatch(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a1", StaffID: "stf-1", Date: "2026-09-04", Time: "10:00"},
	}

	if IsAvailable("2026-09-04", "10:00", "stf-1", appts) {
		t.Fatalf("exact match should not be available")
	}
	if !IsAvailable("2026-09-05", "10:00", "stf-1", appts) {
		t.Fatalf("different date should be available")
	}
	if !IsAvailable("2026-09-04", "10:30", "stf-1", appts) {
		t.Fatalf("different time should be available")
	}
	if !IsAvailable("2026-09-04", "10:00", "stf-2", appts) {
		t.Fatalf("different staff should be available")
	}
}

func TestIsAvailable_EmptySnapshot(t *testing.T) {
	if !IsAvailable("2026-09-04", "10:00", "stf-1", nil) {
		t.Fatalf("empty snapshot should always be available")
	}
}

func TestIsAvailable_IgnoresDurations(t *testing.T) {
	// A 90-minute appointment at 10:00 does NOT block 10:30 or 11:00;
	// conflict detection is slot-exact by policy.
	appts := []models.Appointment{
		{ID: "a1", StaffID: "stf-1", Date: "2026-09-04", Time: "10:00", TotalDuration: 90},
	}

	if !IsAvailable("2026-09-04", "10:30", "stf-1", appts) {
		t.Fatalf("10:30 should be available despite the 90-minute booking at 10:00")
	}
	if !IsAvailable("2026-09-04", "11:00", "stf-1", appts) {
		t.Fatalf("11:00 should be available despite the 90-minute booking at 10:00")
	}
}

func TestFreeSlots_FiltersBookedSlotsForStaffOnly(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a1", StaffID: "stf-1", Date: "2026-09-04", Time: "09:00"},
		{ID: "a2", StaffID: "stf-1", Date: "2026-09-04", Time: "14:30"},
		{ID: "a3", StaffID: "stf-2", Date: "2026-09-04", Time: "10:00"},
		{ID: "a4", StaffID: "stf-1", Date: "2026-09-05", Time: "11:00"},
	}

	free := FreeSlots("2026-09-04", "stf-1", appts)

	if len(free) != 16 {
		t.Fatalf("len(free) = %d, want 16", len(free))
	}
	for _, tod := range free {
		if tod == "09:00" || tod == "14:30" {
			t.Fatalf("booked slot %q still offered", tod)
		}
	}
	// Another staff member's booking and another day's booking do not
	// affect this staff member's day.
	found10 := false
	found11 := false
	for _, tod := range free {
		if tod == "10:00" {
			found10 = true
		}
		if tod == "11:00" {
			found11 = true
		}
	}
	if !found10 || !found11 {
		t.Fatalf("free = %v, want 10:00 and 11:00 present", free)
	}
}

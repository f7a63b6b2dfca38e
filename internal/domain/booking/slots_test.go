package booking

import (
	"testing"
	"time"
)

func TestGenerateTimeSlots_GridShape(t *testing.T) {
	slots := GenerateTimeSlots()

	if len(slots) != 18 {
		t.Fatalf("len(slots) = %d, want 18", len(slots))
	}
	if slots[0] != "09:00" {
		t.Fatalf("first slot = %q, want %q", slots[0], "09:00")
	}
	if slots[len(slots)-1] != "17:30" {
		t.Fatalf("last slot = %q, want %q", slots[len(slots)-1], "17:30")
	}
}

func TestGenerateTimeSlots_StrictlyAscendingWith30MinuteSpacing(t *testing.T) {
	slots := GenerateTimeSlots()

	for i := 1; i < len(slots); i++ {
		prev, err := time.Parse("15:04", slots[i-1])
		if err != nil {
			t.Fatalf("parse %q: %v", slots[i-1], err)
		}
		cur, err := time.Parse("15:04", slots[i])
		if err != nil {
			t.Fatalf("parse %q: %v", slots[i], err)
		}
		if got := cur.Sub(prev); got != 30*time.Minute {
			t.Fatalf("spacing between %q and %q = %v, want 30m", slots[i-1], slots[i], got)
		}
	}
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	first := GenerateTimeSlots()
	second := GenerateTimeSlots()

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("slot %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestIsOfferedSlot(t *testing.T) {
	if !IsOfferedSlot("09:00") {
		t.Fatalf("IsOfferedSlot(09:00) = false, want true")
	}
	if !IsOfferedSlot("17:30") {
		t.Fatalf("IsOfferedSlot(17:30) = false, want true")
	}
	if IsOfferedSlot("18:00") {
		t.Fatalf("IsOfferedSlot(18:00) = true, want false")
	}
	if IsOfferedSlot("09:15") {
		t.Fatalf("IsOfferedSlot(09:15) = true, want false")
	}
}

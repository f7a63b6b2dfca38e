package booking

import "github.com/glowdesk/salon-scheduler/internal/models"

// IsAvailable reports whether the slot is free for the staff member within
// the given appointment snapshot. Matching is slot-exact by policy: service
// durations are ignored, so two bookings for the same staff, date and time
// conflict even when their durations would not overlap.
//
// The snapshot must be consistent; a stale one can report false
// availability, which the store's write-time conflict check backstops.
func IsAvailable(date, tod, staffID string, appts []models.Appointment) bool {
	for _, appt := range appts {
		if appt.Date == date && appt.Time == tod && appt.StaffID == staffID {
			return false
		}
	}
	return true
}

// FreeSlots filters the daily grid down to the slots still open for the
// staff member on the given date.
func FreeSlots(date, staffID string, appts []models.Appointment) []string {
	free := make([]string, 0)
	for _, tod := range GenerateTimeSlots() {
		if IsAvailable(date, tod, staffID, appts) {
			free = append(free, tod)
		}
	}
	return free
}

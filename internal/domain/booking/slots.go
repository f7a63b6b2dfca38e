package booking

import "fmt"

// Business-hours policy: bookable slots run from 09:00 inclusive to 18:00
// exclusive on a 30-minute grid.
const (
	openingHour = 9
	closingHour = 18
)

// GenerateTimeSlots returns the canonical ordered list of bookable
// times-of-day ("09:00" ... "17:30"). This list is the single source of
// truth for what times are offered, independent of which are taken.
func GenerateTimeSlots() []string {
	slots := make([]string, 0, (closingHour-openingHour)*2)
	for hour := openingHour; hour < closingHour; hour++ {
		for _, minute := range []int{0, 30} {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// IsOfferedSlot reports whether tod sits on the daily grid.
func IsOfferedSlot(tod string) bool {
	for _, slot := range GenerateTimeSlots() {
		if slot == tod {
			return true
		}
	}
	return false
}

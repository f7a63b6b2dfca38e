package weather

import "strings"

// Tips derives grooming advice for the confirmation page from the current
// conditions and the booked services. Purely informational; never affects
// the booking itself.
func Tips(cond Conditions, serviceNames []string, appointmentTime string) []string {
	var tips []string

	hasHairService := false
	for _, name := range serviceNames {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "hair") || strings.Contains(lower, "color") || strings.Contains(lower, "styling") {
			hasHairService = true
		}
	}

	switch cond.Condition {
	case "rain", "storm":
		tips = append(tips, "Rain expected around your appointment, bring an umbrella.")
		if hasHairService {
			tips = append(tips, "Humidity can undo fresh styling; consider a hood or scarf for the trip home.")
		}
	case "snow":
		tips = append(tips, "Snow in the forecast, allow extra travel time.")
	case "windy":
		if hasHairService {
			tips = append(tips, "It's windy out; a hat will keep your new look intact.")
		}
	case "sunny":
		if cond.Temperature >= 28 {
			tips = append(tips, "Hot and sunny, freshly treated hair benefits from UV protection spray.")
		}
	}

	if strings.HasPrefix(appointmentTime, "09:") {
		tips = append(tips, "Morning slot: arriving 10 minutes early keeps the day on schedule.")
	}

	return tips
}

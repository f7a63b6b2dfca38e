package models

// StaffMember is immutable reference data, read-only to the booking core.
type StaffMember struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ServiceIDs []string `json:"service_ids"`
}

// CanPerform reports whether the staff member offers the given service.
func (s StaffMember) CanPerform(serviceID string) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

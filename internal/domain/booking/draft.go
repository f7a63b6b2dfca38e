package booking

import (
	"strings"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

// Draft is the accumulating, not-yet-persisted state of one booking
// session. It is owned by exactly one session and discarded on completion
// or abandonment.
type Draft struct {
	Services []models.Service
	Staff    *models.StaffMember

	Date string
	Time string

	ClientName string
	Phone      string
	Email      string
	Notes      string

	TotalPrice    float64
	TotalDuration int
}

// setServices replaces the selection and recomputes the derived totals.
func (d *Draft) setServices(services []models.Service) {
	d.Services = services

	d.TotalPrice = 0
	d.TotalDuration = 0
	for _, svc := range services {
		d.TotalPrice += svc.Price
		d.TotalDuration += svc.DurationMin
	}
}

func (d *Draft) serviceIDs() []string {
	ids := make([]string, 0, len(d.Services))
	for _, svc := range d.Services {
		ids = append(ids, svc.ID)
	}
	return ids
}

func (d *Draft) serviceNames() []string {
	names := make([]string, 0, len(d.Services))
	for _, svc := range d.Services {
		names = append(names, svc.Name)
	}
	return names
}

func (d *Draft) joinedServiceNames() string {
	return strings.Join(d.serviceNames(), ", ")
}

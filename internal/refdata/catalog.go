package refdata

import "github.com/glowdesk/salon-scheduler/internal/models"

// Source provides the immutable service and staff reference data the
// booking core reads. Implementations must never mutate what they hand out.
type Source interface {
	Services() []models.Service
	Service(id string) (models.Service, bool)
	Staff() []models.StaffMember
	StaffMember(id string) (models.StaffMember, bool)
}

// Catalog is an in-memory Source.
type Catalog struct {
	services []models.Service
	staff    []models.StaffMember
}

func New(services []models.Service, staff []models.StaffMember) *Catalog {
	return &Catalog{services: services, staff: staff}
}

// Default is the salon's catalog.
func Default() *Catalog {
	return New(
		[]models.Service{
			{ID: "svc-haircut", Name: "Haircut", Price: 40, DurationMin: 30},
			{ID: "svc-color", Name: "Color", Price: 100, DurationMin: 90},
			{ID: "svc-styling", Name: "Styling", Price: 55, DurationMin: 45},
			{ID: "svc-manicure", Name: "Manicure", Price: 35, DurationMin: 40},
			{ID: "svc-beard-trim", Name: "Beard Trim", Price: 20, DurationMin: 15},
		},
		[]models.StaffMember{
			{ID: "stf-alex", Name: "Alex Morgan", ServiceIDs: []string{"svc-haircut", "svc-color", "svc-styling", "svc-beard-trim"}},
			{ID: "stf-bella", Name: "Bella Chen", ServiceIDs: []string{"svc-haircut", "svc-color", "svc-styling"}},
			{ID: "stf-carmen", Name: "Carmen Diaz", ServiceIDs: []string{"svc-styling", "svc-manicure"}},
		},
	)
}

func (c *Catalog) Services() []models.Service {
	out := make([]models.Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *Catalog) Service(id string) (models.Service, bool) {
	for _, svc := range c.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

func (c *Catalog) Staff() []models.StaffMember {
	out := make([]models.StaffMember, len(c.staff))
	copy(out, c.staff)
	return out
}

func (c *Catalog) StaffMember(id string) (models.StaffMember, bool) {
	for _, member := range c.staff {
		if member.ID == id {
			return member, true
		}
	}
	return models.StaffMember{}, false
}

// Compile-time check
var _ Source = (*Catalog)(nil)

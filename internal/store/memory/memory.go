package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/store"
)

// Store is a mutex-guarded in-memory appointment collection. Each instance
// is independently owned; tests and sessions inject their own.
type Store struct {
	mu           sync.Mutex
	appointments []models.Appointment
	now          func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

// NewWithClock builds a store with an injected clock for deterministic
// CreatedAt stamps in tests.
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

func (s *Store) List(ctx context.Context) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out, nil
}

func (s *Store) Create(ctx context.Context, appt models.Appointment) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.appointments {
		if existing.StaffID == appt.StaffID && existing.Date == appt.Date && existing.Time == appt.Time {
			return models.Appointment{}, store.ErrConflict
		}
	}

	appt.ID = uuid.NewString()
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = s.now()
	}

	s.appointments = append(s.appointments, appt)
	return appt, nil
}

func (s *Store) Update(ctx context.Context, id string, fields store.Fields) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Appointment{}, store.ErrNotFound
	}

	merged := s.appointments[idx]
	applyFields(&merged, fields)

	for i, existing := range s.appointments {
		if i == idx {
			continue
		}
		if existing.StaffID == merged.StaffID && existing.Date == merged.Date && existing.Time == merged.Time {
			return models.Appointment{}, store.ErrConflict
		}
	}

	s.appointments[idx] = merged
	return merged, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func applyFields(appt *models.Appointment, fields store.Fields) {
	if fields.Date != nil {
		appt.Date = *fields.Date
	}
	if fields.Time != nil {
		appt.Time = *fields.Time
	}
	if fields.ClientName != nil {
		appt.ClientName = *fields.ClientName
	}
	if fields.Phone != nil {
		appt.Phone = *fields.Phone
	}
	if fields.Email != nil {
		appt.Email = *fields.Email
	}
	if fields.Notes != nil {
		appt.Notes = *fields.Notes
	}
}

// Compile-time check
var _ store.Repository = (*Store)(nil)

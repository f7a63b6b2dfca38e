package store

import (
	"context"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

// Fields carries a partial update; nil pointers leave the stored value
// untouched.
type Fields struct {
	Date       *string
	Time       *string
	ClientName *string
	Phone      *string
	Email      *string
	Notes      *string
}

// Repository is the appointment collection. It is the only assigner of
// appointment identifiers, and every implementation enforces the
// (StaffID, Date, Time) uniqueness invariant at write time.
type Repository interface {
	// List returns a snapshot in insertion order.
	List(ctx context.Context) ([]models.Appointment, error)

	// Create assigns a fresh id, appends the record and returns it.
	// Returns ErrConflict if the slot is already held by the same staff.
	Create(ctx context.Context, appt models.Appointment) (models.Appointment, error)

	// Update merges the supplied fields into the existing record.
	// Returns ErrNotFound if id is absent, ErrConflict if the merged
	// record would double-book a slot.
	Update(ctx context.Context, id string, fields Fields) (models.Appointment, error)

	// Delete removes the record. Returns ErrNotFound if id is absent.
	Delete(ctx context.Context, id string) error
}

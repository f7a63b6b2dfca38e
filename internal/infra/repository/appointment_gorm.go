package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/store"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// List
// --------------------------------------------------

func (r *AppointmentGormRepository) List(
	ctx context.Context,
) ([]models.Appointment, error) {

	var appts []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	appt models.Appointment,
) (models.Appointment, error) {

	appt.ID = uuid.NewString()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"staff_id = ? AND date = ? AND time = ?",
				appt.StaffID, appt.Date, appt.Time,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return store.ErrConflict
		}

		return tx.Create(&appt).Error
	})
	if err != nil {
		return models.Appointment{}, err
	}

	return appt, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	id string,
	fields store.Fields,
) (models.Appointment, error) {

	var appt models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&appt, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrNotFound
			}
			return err
		}

		applyFields(&appt, fields)

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"staff_id = ? AND date = ? AND time = ? AND id <> ?",
				appt.StaffID, appt.Date, appt.Time, appt.ID,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return store.ErrConflict
		}

		return tx.Save(&appt).Error
	})
	if err != nil {
		return models.Appointment{}, err
	}

	return appt, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
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
var _ store.Repository = (*AppointmentGormRepository)(nil)

package models

import "time"

// StatusConfirmed is the only status that reaches persistence: appointments
// are created confirmed and removed outright on cancellation.
const StatusConfirmed = "confirmed"

// Appointment is the persisted record shape. Date and Time are civil values
// ("2006-01-02" and "15:04") in the business's local timezone; no two
// appointments may share the same (StaffID, Date, Time).
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ServiceIDs   []string `gorm:"serializer:json" json:"service_ids"`
	ServiceNames string   `gorm:"size:255" json:"service_names"`

	StaffID   string `gorm:"size:36;uniqueIndex:idx_staff_slot" json:"staff_id"`
	StaffName string `gorm:"size:100" json:"staff_name"`

	Date string `gorm:"size:10;uniqueIndex:idx_staff_slot" json:"date"`
	Time string `gorm:"size:5;uniqueIndex:idx_staff_slot" json:"time"`

	ClientName string `gorm:"size:100" json:"client_name"`
	Phone      string `gorm:"size:20" json:"phone"`
	Email      string `gorm:"size:100" json:"email"`
	Notes      string `gorm:"size:255" json:"notes"`

	TotalPrice    float64 `json:"total_price"`
	TotalDuration int     `json:"total_duration"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

package dto

import "time"

type AppointmentListDTO struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	ServiceNames  string    `json:"service_names"`
	StaffName     string    `json:"staff_name"`
	ClientName    string    `json:"client_name"`
	Status        string    `json:"status"`
	TotalPrice    float64   `json:"total_price"`
	TotalDuration int       `json:"total_duration"`
	CreatedAt     time.Time `json:"created_at"`
}

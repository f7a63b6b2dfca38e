package models

// Service is immutable reference data, read-only to the booking core.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

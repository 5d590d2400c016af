package domain

import "time"

// CatalogService is a bookable salon service (haircut, manicure, ...).
type CatalogService struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

package domain

import "time"

// Review rates a master 1..5, optionally scoped to one catalog service.
// A user gets at most one review per (master, service) target.
type Review struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	MasterID  int64     `json:"master_id"`
	ServiceID *int64    `json:"service_id,omitempty"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewWithNames is a review enriched with display names for read paths.
type ReviewWithNames struct {
	Review
	UserName             string `json:"user_name"`
	MasterName           string `json:"master_name,omitempty"`
	MasterSpecialization string `json:"master_specialization,omitempty"`
}

// MasterRating is the aggregate computed straight from review rows,
// independent of the cached Master.Rating column.
type MasterRating struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

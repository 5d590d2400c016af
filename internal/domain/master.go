package domain

import "time"

// Master is a service provider in the salon directory. Rating is a cached
// aggregate over the master's reviews; the review repository keeps it in
// step with the underlying rows.
type Master struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Rating         float64   `json:"rating"`
	PhotoURL       string    `json:"photo_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// MasterWithFavorite is the directory row returned to an authenticated
// user: the master plus whether that user has favorited them.
type MasterWithFavorite struct {
	Master
	IsFavorite bool `json:"is_favorite"`
}

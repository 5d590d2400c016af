package domain

import "time"

// Favorite links a user to a master they bookmarked. The pair is unique.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	MasterID  int64     `json:"master_id"`
	CreatedAt time.Time `json:"created_at"`
}

package domain

import "time"

// Like records that a user liked a creation. Existence implies "liked";
// there is no other metadata.
type Like struct {
	UserID     int64     `json:"user_id" db:"user_id"`
	CreationID int64     `json:"creation_id" db:"creation_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

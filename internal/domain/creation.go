package domain

import (
	"io"
	"time"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type Creation struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	MediaURL        string    `json:"media_url" db:"media_url"`
	MediaType       MediaType `json:"media_type" db:"media_type"`
	Prompt          string    `json:"prompt" db:"prompt"`
	Gender          *string   `json:"gender,omitempty" db:"gender"`
	AgeGroup        *string   `json:"age_group,omitempty" db:"age_group"`
	IsPublic        bool      `json:"is_public" db:"is_public"`
	IsPickedByAdmin bool      `json:"is_picked_by_admin" db:"is_picked_by_admin"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Upload carries an inbound media blob. Filename and ContentType are hints
// from the client and may be empty.
type Upload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

type SaveCreationInput struct {
	Prompt   string  `json:"prompt"`
	Gender   *string `json:"gender,omitempty"`
	AgeGroup *string `json:"age_group,omitempty"`
	IsPublic bool    `json:"is_public"`
}

// AdminPickStatus is the result of toggling the curation flag.
type AdminPickStatus struct {
	ID              int64 `json:"id"`
	IsPickedByAdmin bool  `json:"is_picked_by_admin"`
}

type FeedSort string

const (
	FeedSortLatest FeedSort = "latest"
)

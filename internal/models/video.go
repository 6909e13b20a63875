package models

import "time"

type Video struct {
	ID              string     `db:"id" json:"id"`
	OwnerID         string     `db:"owner_id" json:"ownerId"`
	Title           string     `db:"title" json:"title"`
	Description     string     `db:"description" json:"description"`
	DurationSeconds int        `db:"duration_seconds" json:"durationSeconds"`
	PublishedAt     *time.Time `db:"published_at" json:"publishedAt,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
}

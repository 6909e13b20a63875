package models

import "time"

// Playlist is an ordered collection of videos owned by a user. Video
// membership has set semantics: adding a video twice is a no-op.
type Playlist struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	OwnerID     string    `db:"owner_id" json:"ownerId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`

	// Videos is populated on single-playlist reads, not list queries.
	Videos []Video `db:"-" json:"videos,omitempty"`
}

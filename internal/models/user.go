package models

import "time"

// User represents a channel owner or viewer. Users are provisioned by the
// signup service; this backend only reads them.
type User struct {
	ID              string    `db:"id" json:"id"`
	Username        string    `db:"username" json:"username"`
	SubscriberCount int       `db:"subscriber_count" json:"subscriberCount"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

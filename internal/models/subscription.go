package models

import "time"

// Subscription links a subscriber to a channel. At most one row exists per
// (channel_id, subscriber_id) pair; the toggle endpoint creates and deletes
// rows, there are no separate subscribe/unsubscribe operations.
type Subscription struct {
	ID           int       `db:"id" json:"-"`
	ChannelID    string    `db:"channel_id" json:"channelId"`
	SubscriberID string    `db:"subscriber_id" json:"subscriberId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"vidtube/internal/models"
)

func (s *Store) GetSubscription(ctx context.Context, channelID, subscriberID string) (*models.Subscription, error) {
	sub := &models.Subscription{}
	err := s.db.GetContext(ctx, sub,
		"SELECT * FROM subscriptions WHERE channel_id = $1 AND subscriber_id = $2",
		channelID, subscriberID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Store) CreateSubscription(ctx context.Context, channelID, subscriberID string) (*models.Subscription, error) {
	query := `
		INSERT INTO subscriptions (channel_id, subscriber_id)
		VALUES ($1, $2)
		RETURNING id, channel_id, subscriber_id, created_at
	`
	sub := &models.Subscription{}
	err := s.db.GetContext(ctx, sub, query, channelID, subscriberID)
	if err != nil {
		log.Printf("Error creating subscription %s/%s: %v", channelID, subscriberID, err)
		return nil, err
	}
	return sub, nil
}

func (s *Store) DeleteSubscription(ctx context.Context, channelID, subscriberID string) error {
	query := `
		DELETE FROM subscriptions
		WHERE channel_id = $1 AND subscriber_id = $2
	`
	_, err := s.db.ExecContext(ctx, query, channelID, subscriberID)
	if err != nil {
		log.Printf("Error deleting subscription %s/%s: %v", channelID, subscriberID, err)
		return err
	}
	return nil
}

func (s *Store) GetChannelSubscribers(ctx context.Context, channelID string) ([]string, error) {
	query := `
		SELECT subscriber_id FROM subscriptions
		WHERE channel_id = $1
		ORDER BY created_at DESC
	`
	var subscribers []string
	if err := s.db.SelectContext(ctx, &subscribers, query, channelID); err != nil {
		log.Printf("Error getting subscribers for channel %s: %v", channelID, err)
		return nil, err
	}
	return subscribers, nil
}

func (s *Store) GetSubscribedChannels(ctx context.Context, subscriberID string) ([]string, error) {
	query := `
		SELECT channel_id FROM subscriptions
		WHERE subscriber_id = $1
		ORDER BY created_at DESC
	`
	var channels []string
	if err := s.db.SelectContext(ctx, &channels, query, subscriberID); err != nil {
		log.Printf("Error getting channels for subscriber %s: %v", subscriberID, err)
		return nil, err
	}
	return channels, nil
}

func (s *Store) CountChannelSubscribers(ctx context.Context, channelID string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1", channelID)
	return count, err
}

// ChannelsWithSubscribers lists every channel that currently has at least
// one subscription row. Used by the periodic stats sweep.
func (s *Store) ChannelsWithSubscribers(ctx context.Context) ([]string, error) {
	var channels []string
	err := s.db.SelectContext(ctx, &channels,
		"SELECT DISTINCT channel_id FROM subscriptions")
	return channels, err
}

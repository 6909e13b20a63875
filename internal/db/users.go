package db

import (
	"context"
	"database/sql"
	"errors"

	"vidtube/internal/models"
)

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	err := s.db.GetContext(ctx, user, "SELECT * FROM users WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateSubscriberCount stores the derived subscriber total for a channel.
// Maintained by the worker, never by request handlers.
func (s *Store) UpdateSubscriberCount(ctx context.Context, channelID string, count int) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE users SET subscriber_count = $1 WHERE id = $2", count, channelID)
	return err
}

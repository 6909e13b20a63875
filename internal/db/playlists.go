package db

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/google/uuid"
	"vidtube/internal/models"
)

func (s *Store) CreatePlaylist(ctx context.Context, name, description, ownerID string) (*models.Playlist, error) {
	query := `
		INSERT INTO playlists (id, name, description, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, owner_id, created_at, updated_at
	`
	playlist := &models.Playlist{}
	err := s.db.GetContext(ctx, playlist, query, uuid.New().String(), name, description, ownerID)
	if err != nil {
		log.Printf("Error creating playlist for user %s: %v", ownerID, err)
		return nil, err
	}
	return playlist, nil
}

func (s *Store) GetPlaylistByID(ctx context.Context, id string) (*models.Playlist, error) {
	playlist := &models.Playlist{}
	err := s.db.GetContext(ctx, playlist, "SELECT * FROM playlists WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

// UpdatePlaylist applies the provided fields; nil means "leave unchanged".
func (s *Store) UpdatePlaylist(ctx context.Context, id string, name, description *string) (*models.Playlist, error) {
	query := `
		UPDATE playlists
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, description, owner_id, created_at, updated_at
	`
	playlist := &models.Playlist{}
	err := s.db.GetContext(ctx, playlist, query, name, description, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("Error updating playlist %s: %v", id, err)
		return nil, err
	}
	return playlist, nil
}

func (s *Store) DeletePlaylist(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM playlists WHERE id = $1", id)
	if err != nil {
		log.Printf("Error deleting playlist %s: %v", id, err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetPlaylistsByOwner(ctx context.Context, ownerID string) ([]models.Playlist, error) {
	query := `
		SELECT id, name, description, owner_id, created_at, updated_at
		FROM playlists
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	var playlists []models.Playlist
	if err := s.db.SelectContext(ctx, &playlists, query, ownerID); err != nil {
		log.Printf("Error getting playlists for user %s: %v", ownerID, err)
		return nil, err
	}
	return playlists, nil
}

// AddVideoToPlaylist inserts a membership row. Set semantics: an already
// present video leaves the playlist unchanged.
func (s *Store) AddVideoToPlaylist(ctx context.Context, playlistID, videoID string) error {
	query := `
		INSERT INTO playlist_videos (playlist_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (playlist_id, video_id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query, playlistID, videoID)
	if err != nil {
		log.Printf("Error adding video %s to playlist %s: %v", videoID, playlistID, err)
	}
	return err
}

// RemoveVideoFromPlaylist deletes a membership row; removing an absent
// video is a no-op.
func (s *Store) RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID string) error {
	query := `
		DELETE FROM playlist_videos
		WHERE playlist_id = $1 AND video_id = $2
	`
	_, err := s.db.ExecContext(ctx, query, playlistID, videoID)
	if err != nil {
		log.Printf("Error removing video %s from playlist %s: %v", videoID, playlistID, err)
	}
	return err
}

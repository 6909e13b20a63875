package db

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"vidtube/internal/models"
)

func (s *Store) GetVideoByID(ctx context.Context, id string) (*models.Video, error) {
	video := &models.Video{}
	err := s.db.GetContext(ctx, video, "SELECT * FROM videos WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return video, nil
}

func (s *Store) GetPlaylistVideos(ctx context.Context, playlistID string) ([]models.Video, error) {
	query := `
		SELECT v.id, v.owner_id, v.title, v.description, v.duration_seconds, v.published_at, v.created_at
		FROM videos v
		JOIN playlist_videos pv ON pv.video_id = v.id
		WHERE pv.playlist_id = $1
		ORDER BY pv.added_at
	`
	var videos []models.Video
	if err := s.db.SelectContext(ctx, &videos, query, playlistID); err != nil {
		log.Printf("Error getting videos for playlist %s: %v", playlistID, err)
		return nil, err
	}
	return videos, nil
}

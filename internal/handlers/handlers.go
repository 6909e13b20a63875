package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"vidtube/internal/models"
	"vidtube/pkg/tasks"
)

// Store is the storage surface the handlers depend on. *db.Store implements
// it; tests substitute sqlmock-backed stores.
type Store interface {
	GetSubscription(ctx context.Context, channelID, subscriberID string) (*models.Subscription, error)
	CreateSubscription(ctx context.Context, channelID, subscriberID string) (*models.Subscription, error)
	DeleteSubscription(ctx context.Context, channelID, subscriberID string) error
	GetChannelSubscribers(ctx context.Context, channelID string) ([]string, error)
	GetSubscribedChannels(ctx context.Context, subscriberID string) ([]string, error)

	CreatePlaylist(ctx context.Context, name, description, ownerID string) (*models.Playlist, error)
	GetPlaylistByID(ctx context.Context, id string) (*models.Playlist, error)
	UpdatePlaylist(ctx context.Context, id string, name, description *string) (*models.Playlist, error)
	DeletePlaylist(ctx context.Context, id string) error
	GetPlaylistsByOwner(ctx context.Context, ownerID string) ([]models.Playlist, error)
	AddVideoToPlaylist(ctx context.Context, playlistID, videoID string) error
	RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID string) error
	GetPlaylistVideos(ctx context.Context, playlistID string) ([]models.Video, error)

	GetVideoByID(ctx context.Context, id string) (*models.Video, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

type Handlers struct {
	store       Store
	asynqClient tasks.TaskEnqueuer
}

func New(store Store, asynqClient tasks.TaskEnqueuer) *Handlers {
	return &Handlers{
		store:       store,
		asynqClient: asynqClient,
	}
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"status": "error", "message": message})
}

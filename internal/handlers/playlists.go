package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"vidtube/internal/db"
	"vidtube/internal/middleware"
	"vidtube/internal/models"
)

type createPlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *Handlers) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req createPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}

	ownerID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	playlist, err := h.store.CreatePlaylist(r.Context(), req.Name, req.Description, ownerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"status":   "success",
		"message":  "Playlist created successfully",
		"playlist": playlist,
	})
}

func (h *Handlers) GetPlaylistByID(w http.ResponseWriter, r *http.Request) {
	playlistID := mux.Vars(r)["playlistId"]
	if !models.IsValidID(playlistID) {
		respondError(w, http.StatusBadRequest, "Invalid playlist id")
		return
	}

	playlist, err := h.store.GetPlaylistByID(r.Context(), playlistID)
	if errors.Is(err, db.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Playlist not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	videos, err := h.store.GetPlaylistVideos(r.Context(), playlistID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	playlist.Videos = videos

	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"playlist": playlist,
	})
}

func (h *Handlers) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID := mux.Vars(r)["playlistId"]
	if !models.IsValidID(playlistID) {
		respondError(w, http.StatusBadRequest, "Invalid playlist id")
		return
	}

	var req updatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == nil && req.Description == nil {
		respondError(w, http.StatusBadRequest, "Nothing to update")
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}

	playlist, err := h.store.UpdatePlaylist(r.Context(), playlistID, req.Name, req.Description)
	if errors.Is(err, db.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Playlist not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"message":  "Playlist updated successfully",
		"playlist": playlist,
	})
}

func (h *Handlers) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID := mux.Vars(r)["playlistId"]
	if !models.IsValidID(playlistID) {
		respondError(w, http.StatusBadRequest, "Invalid playlist id")
		return
	}

	err := h.store.DeletePlaylist(r.Context(), playlistID)
	if errors.Is(err, db.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Playlist not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Playlist deleted successfully",
	})
}

func (h *Handlers) AddVideoToPlaylist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	videoID, playlistID := vars["videoId"], vars["playlistId"]
	if !models.IsValidID(videoID) {
		respondError(w, http.StatusBadRequest, "Invalid video id")
		return
	}
	if !models.IsValidID(playlistID) {
		respondError(w, http.StatusBadRequest, "Invalid playlist id")
		return
	}

	if _, err := h.store.GetVideoByID(r.Context(), videoID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Video not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if _, err := h.store.GetPlaylistByID(r.Context(), playlistID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Playlist not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.store.AddVideoToPlaylist(r.Context(), playlistID, videoID); err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Video added to playlist",
	})
}

func (h *Handlers) RemoveVideoFromPlaylist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	videoID, playlistID := vars["videoId"], vars["playlistId"]
	if !models.IsValidID(videoID) {
		respondError(w, http.StatusBadRequest, "Invalid video id")
		return
	}
	if !models.IsValidID(playlistID) {
		respondError(w, http.StatusBadRequest, "Invalid playlist id")
		return
	}

	if _, err := h.store.GetVideoByID(r.Context(), videoID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Video not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.store.RemoveVideoFromPlaylist(r.Context(), playlistID, videoID); err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Video removed from playlist",
	})
}

func (h *Handlers) GetUserPlaylists(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if !models.IsValidID(userID) {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if _, err := h.store.GetUserByID(r.Context(), userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Error looking up user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	playlists, err := h.store.GetPlaylistsByOwner(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if playlists == nil {
		playlists = []models.Playlist{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"playlists": playlists,
	})
}

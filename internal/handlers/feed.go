package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"vidtube/internal/db"
	"vidtube/internal/feed"
	"vidtube/internal/models"
)

// GetPlaylistFeed renders a playlist as an RSS feed. Public, no auth gate.
func (h *Handlers) GetPlaylistFeed(w http.ResponseWriter, r *http.Request) {
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

	rss, err := feed.GenerateRSS(playlist, videos, r)
	if err != nil {
		log.Printf("Error generating RSS for playlist %s: %v", playlistID, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml")
	w.Write([]byte(rss))
}

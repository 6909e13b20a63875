package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"vidtube/internal/db"
	"vidtube/internal/middleware"
	"vidtube/internal/models"
	"vidtube/pkg/tasks"
)

// ToggleSubscription flips the subscription state between the
// authenticated subscriber and the channel: an existing row is deleted, a
// missing one is created. Applying it twice restores the original state.
func (h *Handlers) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	channelID := mux.Vars(r)["channelId"]
	if !models.IsValidID(channelID) {
		respondError(w, http.StatusBadRequest, "Invalid channel id")
		return
	}

	subscriberID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var subscribed bool
	_, err := h.store.GetSubscription(r.Context(), channelID, subscriberID)
	switch {
	case err == nil:
		if err := h.store.DeleteSubscription(r.Context(), channelID, subscriberID); err != nil {
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	case errors.Is(err, db.ErrNotFound):
		if _, err := h.store.CreateSubscription(r.Context(), channelID, subscriberID); err != nil {
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		subscribed = true
	default:
		log.Printf("Error looking up subscription %s/%s: %v", channelID, subscriberID, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// The subscriber_count column is derived; refresh it off the request path.
	task, err := tasks.NewRefreshChannelStatsTask(channelID)
	if err != nil {
		log.Printf("Error creating task: %v", err)
	} else if _, err := h.asynqClient.Enqueue(task); err != nil {
		log.Printf("Error enqueuing task: %v", err)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"message":    "Subscription toggled successfully",
		"subscribed": subscribed,
	})
}

// GetUserChannelSubscribers returns the subscriber ids of a channel. A
// channel nobody follows yields an empty list, not an error.
func (h *Handlers) GetUserChannelSubscribers(w http.ResponseWriter, r *http.Request) {
	channelID := mux.Vars(r)["channelId"]
	if !models.IsValidID(channelID) {
		respondError(w, http.StatusBadRequest, "Invalid channel id")
		return
	}

	subscribers, err := h.store.GetChannelSubscribers(r.Context(), channelID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if subscribers == nil {
		subscribers = []string{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":      "success",
		"subscribers": subscribers,
	})
}

// GetSubscribedChannels returns the channel ids a subscriber follows.
func (h *Handlers) GetSubscribedChannels(w http.ResponseWriter, r *http.Request) {
	subscriberID := mux.Vars(r)["subscriberId"]
	if !models.IsValidID(subscriberID) {
		respondError(w, http.StatusBadRequest, "Invalid subscriber id")
		return
	}

	channels, err := h.store.GetSubscribedChannels(r.Context(), subscriberID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if channels == nil {
		channels = []string{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"channels": channels,
	})
}

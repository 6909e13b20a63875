package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"vidtube/pkg/tasks"
)

// Store is the storage surface the worker depends on.
type Store interface {
	CountChannelSubscribers(ctx context.Context, channelID string) (int, error)
	UpdateSubscriberCount(ctx context.Context, channelID string, count int) error
	ChannelsWithSubscribers(ctx context.Context) ([]string, error)
}

type TaskHandler struct {
	store       Store
	asynqClient tasks.TaskEnqueuer
}

func NewTaskHandler(store Store, client tasks.TaskEnqueuer) *TaskHandler {
	return &TaskHandler{store: store, asynqClient: client}
}

// HandleRefreshChannelStatsTask recomputes a channel's subscriber count
// from the subscriptions table and stores the derived total.
func (h *TaskHandler) HandleRefreshChannelStatsTask(ctx context.Context, t *asynq.Task) error {
	var p tasks.RefreshChannelStatsPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal task payload: %w", err)
	}

	count, err := h.store.CountChannelSubscribers(ctx, p.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to count subscribers for channel %s: %w", p.ChannelID, err)
	}

	if err := h.store.UpdateSubscriberCount(ctx, p.ChannelID, count); err != nil {
		return fmt.Errorf("failed to update subscriber count for channel %s: %w", p.ChannelID, err)
	}

	log.Printf("Channel %s subscriber count refreshed: %d", p.ChannelID, count)
	return nil
}

// HandleRefreshAllChannelStatsTask fans out one refresh task per channel
// that currently has subscribers.
func (h *TaskHandler) HandleRefreshAllChannelStatsTask(ctx context.Context, t *asynq.Task) error {
	channels, err := h.store.ChannelsWithSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list channels: %w", err)
	}

	for _, channelID := range channels {
		task, err := tasks.NewRefreshChannelStatsTask(channelID)
		if err != nil {
			log.Printf("Error creating refresh task for channel %s: %v", channelID, err)
			continue
		}
		if _, err := h.asynqClient.Enqueue(task); err != nil {
			log.Printf("Error enqueuing refresh task for channel %s: %v", channelID, err)
		}
	}

	log.Printf("Enqueued stats refresh for %d channels", len(channels))
	return nil
}

package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeRefreshChannelStats    = "channel:refresh_stats"
	TypeRefreshAllChannelStats = "channels:refresh_all"
)

type RefreshChannelStatsPayload struct {
	ChannelID string
}

func NewRefreshChannelStatsTask(channelID string) (*asynq.Task, error) {
	payload, err := json.Marshal(RefreshChannelStatsPayload{ChannelID: channelID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRefreshChannelStats, payload), nil
}

func NewRefreshAllChannelStatsTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeRefreshAllChannelStats, nil), nil
}

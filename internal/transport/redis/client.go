package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// SummaryPublisher sends every run summary to a redis channel.
// Nothing is stored, subscribers only see summaries published while they listen.
type SummaryPublisher struct {
	client  *redis.Client
	channel string
}

func NewSummaryPublisher(client *redis.Client, channel string) *SummaryPublisher {
	return &SummaryPublisher{
		client:  client,
		channel: channel,
	}
}

func (that *SummaryPublisher) Publish(ctx context.Context, summary *entity.Summary) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("could not marshal summary: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, summaryJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish summary: %w", err)
	}

	return nil
}

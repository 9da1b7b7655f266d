package applicationinfra

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Abraxas-365/jobboard/recruitment/application"
	"github.com/go-redis/redis/v8"
)

// RedisEventPublisher implements application.EventPublisher on a Redis list.
// Consumers BRPOP the list, so events are read oldest first.
type RedisEventPublisher struct {
	client *redis.Client
	key    string
}

// NewRedisEventPublisher creates a publisher pushing to the list at key
func NewRedisEventPublisher(client *redis.Client, key string) *RedisEventPublisher {
	return &RedisEventPublisher{
		client: client,
		key:    key,
	}
}

// PublishSubmitted pushes an application.submitted event
func (p *RedisEventPublisher) PublishSubmitted(ctx context.Context, event application.SubmittedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for application %s: %w", event.ApplicationID, err)
	}

	if err := p.client.LPush(ctx, p.key, data).Err(); err != nil {
		return fmt.Errorf("publish event for application %s: %w", event.ApplicationID, err)
	}

	return nil
}

// Pending returns the number of events not yet consumed
func (p *RedisEventPublisher) Pending(ctx context.Context) (int64, error) {
	size, err := p.client.LLen(ctx, p.key).Result()
	if err != nil {
		return 0, fmt.Errorf("get pending events: %w", err)
	}
	return size, nil
}

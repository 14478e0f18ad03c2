package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const channel = "quicklist.events"

// RedisPublisher broadcasts state-change events on a redis pub/sub channel so
// external surfaces (a web UI, a cast target) can re-render without polling.
// Publishing is best-effort: failures are logged, never propagated.
type RedisPublisher struct {
	rdb *redis.Client
}

// NewRedisPublisher wraps the given client. A nil client yields a publisher
// that silently drops events.
func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, eventType string, payload any) {
	if p == nil || p.rdb == nil {
		return
	}
	data, err := json.Marshal(map[string]any{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		log.Errorf("[events] marshal %s event: %v", eventType, err)
		return
	}
	if err := p.rdb.Publish(ctx, channel, string(data)).Err(); err != nil {
		log.Errorf("[events] publish %s event: %v", eventType, err)
	}
}

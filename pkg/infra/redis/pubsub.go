package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"dixis/shipzone/internal/model"
)

// PubSub Redis 广播
type PubSub struct {
	client  *redis.Client
	channel string
}

// NewPubSub 创建 PubSub 实例并检查连接
func NewPubSub(ctx context.Context, addr, password string, db int, channel string) (*PubSub, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &PubSub{
		client:  client,
		channel: channel,
	}, nil
}

// PublishTablesGenerated 向配置的频道发布 n
func (p *PubSub) PublishTablesGenerated(ctx context.Context, n *model.TablesGenerated) error {
	msgJSON, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, msgJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Close 关闭 Redis 连接
func (p *PubSub) Close() error {
	return p.client.Close()
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-core/internal/service"
)

var ErrEmptyChannel = errors.New("redis channel name is empty")

// Publisher publishes session events as JSON on a pub/sub channel.
type Publisher struct {
	client  *redis.Client
	channel string
}

// New connects to Redis and checks the connection with PING.
func New(ctx context.Context, addr, channel string) (*Publisher, error) {
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Publisher{client: conn, channel: channel}, nil
}

// NewPublisher wraps an existing client. The caller keeps ownership of it.
func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

// Notify - publishes the event on the configured channel.
func (that *Publisher) Notify(ctx context.Context, event service.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event in Redis: %w", err)
	}

	return nil
}

func (that *Publisher) Channel() string {
	return that.channel
}

func (that *Publisher) Close() error {
	return that.client.Close()
}

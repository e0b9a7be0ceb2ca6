package rediscache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	songsKeyPattern = "songs:*"
	scanBatchSize   = 100
)

// SongsCache owns the "songs:" key namespace shared with the song listing
// pages. This service only ever clears it.
type SongsCache struct {
	rdb *redis.Client
}

func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping error: %w", err)
	}

	return rdb, nil
}

func NewSongsCache(rdb *redis.Client) *SongsCache {
	return &SongsCache{rdb: rdb}
}

func (c *SongsCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// InvalidateSongs drops every cached song listing and count.
func (c *SongsCache) InvalidateSongs(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(
			ctx,
			cursor,
			songsKeyPattern,
			scanBatchSize,
		).Result()
		if err != nil {
			return fmt.Errorf("failed to scan song keys: %w", err)
		}

		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete song keys: %w", err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

package cachedresults

import (
	"context"
	"encoding/json"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/bridgetimes/pkg/crossing"
)

const boardCacheKey = "bridgetimes/crossings"

type BoardSource interface {
	ComputeCrossings(ctx context.Context) ([]crossing.Record, error)
}

// Board keeps the last computed board in redis for a short time so that
// a busy page doesn't turn every request into departure board lookups
type Board struct {
	Source BoardSource
	Cache  *cache.Cache[string]
	TTL    time.Duration
}

func NewBoard(source BoardSource, client *redis.Client, ttl time.Duration) *Board {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(ttl))

	return &Board{
		Source: source,
		Cache:  cache.New[string](redisStore),
		TTL:    ttl,
	}
}

func (b *Board) ComputeCrossings(ctx context.Context) ([]crossing.Record, error) {
	cachedValue, err := b.Cache.Get(ctx, boardCacheKey)
	if err == nil && cachedValue != "" {
		var records []crossing.Record
		decodeErr := json.Unmarshal([]byte(cachedValue), &records)
		if decodeErr == nil {
			return records, nil
		}

		log.Error().Err(decodeErr).Msg("Failed to decode cached crossings")
	}

	records, err := b.Source.ComputeCrossings(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(records)
	if err != nil {
		return records, nil
	}

	if err := b.Cache.Set(ctx, boardCacheKey, string(encoded), store.WithExpiration(b.TTL)); err != nil {
		log.Error().Err(err).Msg("Failed to cache crossings")
	}

	return records, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	intconfig "tripmarket/internal/config"
	"tripmarket/internal/domain"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable is returned by Redis-backed stores when no client is configured.
var ErrRedisUnavailable = errors.New("redis not configured")

const compareWatchRetries = 5

// CompareStore keeps each user's compare list as a Redis list of trip ids.
type CompareStore struct {
	Redis *redis.Client
	TTL   time.Duration
	Limit int
}

func (s CompareStore) client() *redis.Client {
	if s.Redis != nil {
		return s.Redis
	}
	return intconfig.Redis
}

func (s CompareStore) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 30 * 24 * time.Hour
}

func (s CompareStore) limit() int {
	if s.Limit > 0 {
		return s.Limit
	}
	return 3
}

func compareKey(userID string) string {
	return fmt.Sprintf("compare:%s", userID)
}

func unavailable() error {
	return domain.InternalError{Msg: "compare list unavailable", Err: ErrRedisUnavailable}
}

func (s CompareStore) List(ctx context.Context, userID string) ([]string, error) {
	c := s.client()
	if c == nil {
		return nil, unavailable()
	}
	ids, err := c.LRange(ctx, compareKey(userID), 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, domain.InternalError{Msg: "failed to read compare list", Err: err}
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Add appends the trip to the list. A trip already present is a no-op; a
// full list is a conflict.
func (s CompareStore) Add(ctx context.Context, userID, tripID string) ([]string, error) {
	c := s.client()
	if c == nil {
		return nil, unavailable()
	}
	key := compareKey(userID)

	var out []string
	txf := func(tx *redis.Tx) error {
		ids, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if slices.Contains(ids, tripID) {
			out = ids
			return nil
		}
		if len(ids) >= s.limit() {
			return domain.ConflictError{Resource: "compare list", Msg: fmt.Sprintf("at most %d trips can be compared", s.limit())}
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.RPush(ctx, key, tripID)
			p.Expire(ctx, key, s.ttl())
			return nil
		})
		if err != nil {
			return err
		}
		out = append(ids, tripID)
		return nil
	}

	for i := 0; i < compareWatchRetries; i++ {
		err := c.Watch(ctx, txf, key)
		switch {
		case err == nil:
			return out, nil
		case errors.Is(err, redis.TxFailedErr):
			continue
		case domain.IsConflict(err):
			return nil, err
		default:
			return nil, domain.InternalError{Msg: "failed to update compare list", Err: err}
		}
	}
	return nil, domain.ConflictError{Resource: "compare list", Msg: "concurrent update, retry"}
}

func (s CompareStore) Remove(ctx context.Context, userID, tripID string) ([]string, error) {
	c := s.client()
	if c == nil {
		return nil, unavailable()
	}
	if err := c.LRem(ctx, compareKey(userID), 0, tripID).Err(); err != nil {
		return nil, domain.InternalError{Msg: "failed to update compare list", Err: err}
	}
	return s.List(ctx, userID)
}

func (s CompareStore) Clear(ctx context.Context, userID string) error {
	c := s.client()
	if c == nil {
		return unavailable()
	}
	if err := c.Del(ctx, compareKey(userID)).Err(); err != nil {
		return domain.InternalError{Msg: "failed to clear compare list", Err: err}
	}
	return nil
}

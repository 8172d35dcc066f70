package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	intconfig "tripmarket/internal/config"
	"tripmarket/internal/domain/models"
	"tripmarket/internal/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TripCache holds trip detail payloads in Redis. Without a client every
// call is a miss and writes are dropped.
type TripCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func (c TripCache) client() *redis.Client {
	if c.Redis != nil {
		return c.Redis
	}
	return intconfig.Redis
}

func tripCacheKey(publicID string) string {
	return fmt.Sprintf("trip:detail:%s", publicID)
}

func (c TripCache) Get(ctx context.Context, publicID string) (models.TripDetail, bool) {
	rdb := c.client()
	if rdb == nil {
		return models.TripDetail{}, false
	}
	data, err := rdb.Get(ctx, tripCacheKey(publicID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.TripDetail{}, false
	}
	if err != nil {
		utils.Log().Warn("trip cache read failed", zap.String("trip", publicID), zap.Error(err))
		return models.TripDetail{}, false
	}
	var d models.TripDetail
	if err := json.Unmarshal(data, &d); err != nil {
		utils.Log().Warn("trip cache entry is corrupt", zap.String("trip", publicID), zap.Error(err))
		return models.TripDetail{}, false
	}
	return d, true
}

func (c TripCache) Set(ctx context.Context, d models.TripDetail) {
	rdb := c.client()
	if rdb == nil || c.TTL <= 0 {
		return
	}
	data, err := json.Marshal(d)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, tripCacheKey(d.Trip.PublicID), data, c.TTL).Err(); err != nil {
		utils.Log().Warn("trip cache write failed", zap.String("trip", d.Trip.PublicID), zap.Error(err))
	}
}

func (c TripCache) Invalidate(ctx context.Context, publicID string) {
	rdb := c.client()
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, tripCacheKey(publicID)).Err(); err != nil {
		utils.Log().Warn("trip cache invalidation failed", zap.String("trip", publicID), zap.Error(err))
	}
}

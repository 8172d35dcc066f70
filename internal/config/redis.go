package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis is nil when REDIS_ADDR is unset; callers treat that as "no cache".
var Redis *redis.Client

func ConnectRedis(ctx context.Context, e Env, log *zap.Logger) (*redis.Client, error) {
	if strings.TrimSpace(e.RedisAddr) == "" {
		log.Info("REDIS_ADDR not set, trip cache and compare list disabled")
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:         e.RedisAddr,
		Password:     e.RedisPassword,
		DB:           e.RedisDB,
		PoolSize:     100,
		MinIdleConns: 10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("config.ConnectRedis: %w", err)
	}

	Redis = client
	log.Info("connected to Redis", zap.String("addr", e.RedisAddr))
	return client, nil
}

func CloseRedis() {
	if Redis != nil {
		_ = Redis.Close()
		Redis = nil
	}
}

package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

var client *redis.Client

// New connects the shared client that backs the ledger, cart, order log and sessions.
// The store cannot serve anything without it, so an unreachable server is an error.
func New(ctx context.Context, cfg config.RedisConfig) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	logger.Info("[redisclient.New] connected", zap.String("addr", addr), zap.Int("db", cfg.DB))
	client = c
	return nil
}

func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}

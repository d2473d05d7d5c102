package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	redisrepo "github.com/muhammadheryan/snackstore/repository/redis"
)

// OrderRepository persists the order log, newest first.
type OrderRepository interface {
	Load(ctx context.Context) ([]model.Order, error)
	Save(ctx context.Context, orders []model.Order) error
	Clear(ctx context.Context) error
}

type KV struct {
	store   redisrepo.Repository
	storage config.StorageConfig
}

func NewOrderRepository(store redisrepo.Repository, storage config.StorageConfig) OrderRepository {
	return &KV{store: store, storage: storage}
}

func (r *KV) Load(ctx context.Context) ([]model.Order, error) {
	raw, err := r.store.Get(ctx, r.storage.Key(constant.StorageKeyOrders))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []model.Order{}, nil
	}
	var orders []model.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *KV) Save(ctx context.Context, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	b, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.storage.Key(constant.StorageKeyOrders), string(b))
}

func (r *KV) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, r.storage.Key(constant.StorageKeyOrders))
}

package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	redisrepo "github.com/muhammadheryan/snackstore/repository/redis"
)

// CartRepository persists each merchant's cart as three independent keys,
// {prefix}:{userID}:cart, {prefix}:{userID}:wholesaleMode and {prefix}:{userID}:deliverySchedule.
type CartRepository interface {
	LoadItems(ctx context.Context, userID uint64) ([]model.CartItem, bool, error)
	SaveItems(ctx context.Context, userID uint64, items []model.CartItem) error
	LoadWholesaleMode(ctx context.Context, userID uint64) (mode bool, found bool, err error)
	SaveWholesaleMode(ctx context.Context, userID uint64, mode bool) error
	LoadDeliverySchedule(ctx context.Context, userID uint64) (*model.DeliverySchedule, error)
	SaveDeliverySchedule(ctx context.Context, userID uint64, schedule *model.DeliverySchedule) error
}

type KV struct {
	store   redisrepo.Repository
	storage config.StorageConfig
}

func NewCartRepository(store redisrepo.Repository, storage config.StorageConfig) CartRepository {
	return &KV{store: store, storage: storage}
}

func (r *KV) LoadItems(ctx context.Context, userID uint64) ([]model.CartItem, bool, error) {
	raw, err := r.store.Get(ctx, r.key(userID, constant.StorageKeyCart))
	if err != nil {
		return nil, false, err
	}
	if raw == "" {
		return nil, false, nil
	}
	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("decode cart: %w", err)
	}
	return items, true, nil
}

func (r *KV) SaveItems(ctx context.Context, userID uint64, items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.key(userID, constant.StorageKeyCart), string(b))
}

func (r *KV) LoadWholesaleMode(ctx context.Context, userID uint64) (bool, bool, error) {
	raw, err := r.store.Get(ctx, r.key(userID, constant.StorageKeyWholesaleMode))
	if err != nil {
		return false, false, err
	}
	if raw == "" {
		return false, false, nil
	}
	mode, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("decode wholesale mode: %w", err)
	}
	return mode, true, nil
}

func (r *KV) SaveWholesaleMode(ctx context.Context, userID uint64, mode bool) error {
	return r.store.Set(ctx, r.key(userID, constant.StorageKeyWholesaleMode), strconv.FormatBool(mode))
}

func (r *KV) LoadDeliverySchedule(ctx context.Context, userID uint64) (*model.DeliverySchedule, error) {
	raw, err := r.store.Get(ctx, r.key(userID, constant.StorageKeyDeliverySchedule))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var schedule model.DeliverySchedule
	if err := json.Unmarshal([]byte(raw), &schedule); err != nil {
		return nil, fmt.Errorf("decode delivery schedule: %w", err)
	}
	return &schedule, nil
}

// SaveDeliverySchedule removes the key when schedule is nil.
func (r *KV) SaveDeliverySchedule(ctx context.Context, userID uint64, schedule *model.DeliverySchedule) error {
	key := r.key(userID, constant.StorageKeyDeliverySchedule)
	if schedule == nil {
		return r.store.Delete(ctx, key)
	}
	b, err := json.Marshal(schedule)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key, string(b))
}

func (r *KV) key(userID uint64, name string) string {
	return r.storage.Key(strconv.FormatUint(userID, 10) + ":" + name)
}

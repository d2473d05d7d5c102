package stock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/constant"
	redisrepo "github.com/muhammadheryan/snackstore/repository/redis"
)

// StockRepository persists the productID -> quantity ledger snapshot.
type StockRepository interface {
	Load(ctx context.Context) (map[string]int, bool, error)
	Save(ctx context.Context, ledger map[string]int) error
}

type KV struct {
	store   redisrepo.Repository
	storage config.StorageConfig
}

func NewStockRepository(store redisrepo.Repository, storage config.StorageConfig) StockRepository {
	return &KV{store: store, storage: storage}
}

func (r *KV) Load(ctx context.Context) (map[string]int, bool, error) {
	raw, err := r.store.Get(ctx, r.storage.Key(constant.StorageKeyProductStock))
	if err != nil {
		return nil, false, err
	}
	if raw == "" {
		return nil, false, nil
	}
	ledger := make(map[string]int)
	if err := json.Unmarshal([]byte(raw), &ledger); err != nil {
		return nil, false, fmt.Errorf("decode stock ledger: %w", err)
	}
	return ledger, true, nil
}

func (r *KV) Save(ctx context.Context, ledger map[string]int) error {
	b, err := json.Marshal(ledger)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.storage.Key(constant.StorageKeyProductStock), string(b))
}

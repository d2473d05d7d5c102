package cart

import (
	"context"
	"sync"

	"github.com/muhammadheryan/snackstore/application/stock"
	"github.com/muhammadheryan/snackstore/cmd/config"
	cartrepo "github.com/muhammadheryan/snackstore/repository/cart"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"github.com/muhammadheryan/snackstore/utils/metrics"
	"go.uber.org/zap"
)

// Carts hands out the cart of each merchant. A cart is rehydrated from storage
// the first time its merchant touches it; every cart reserves against the same ledger.
type Carts interface {
	Get(ctx context.Context, userID uint64) (CartApp, error)
}

type cartsImpl struct {
	mu    sync.Mutex
	carts map[uint64]CartApp

	config   config.CartConfig
	stockApp stock.StockApp
	cartRepo cartrepo.CartRepository
	metrics  *metrics.StoreMetrics
}

func NewCarts(cfg config.CartConfig, stockApp stock.StockApp, cartRepo cartrepo.CartRepository, m *metrics.StoreMetrics) Carts {
	return &cartsImpl{
		carts:    make(map[uint64]CartApp),
		config:   cfg,
		stockApp: stockApp,
		cartRepo: cartRepo,
		metrics:  m,
	}
}

// Get returns the merchant's cart. A failed load is not cached, the next call retries it.
func (s *cartsImpl) Get(ctx context.Context, userID uint64) (CartApp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[userID]; ok {
		return c, nil
	}

	c := NewCartApp(s.config, userID, s.stockApp, s.cartRepo, s.metrics)
	if err := c.Load(ctx); err != nil {
		logger.Error("[Carts.Get] err cart.Load", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, err
	}
	s.carts[userID] = c
	return c, nil
}

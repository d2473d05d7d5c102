package stock

import (
	"context"
	"sync"

	productrepo "github.com/muhammadheryan/snackstore/repository/product"
	stockrepo "github.com/muhammadheryan/snackstore/repository/stock"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"go.uber.org/zap"
)

// StockApp is the product ledger shared by every cart mutation.
// Absent products read as zero and quantities never go negative.
type StockApp interface {
	Load(ctx context.Context) error
	Initialize(ctx context.Context) error
	IsAvailable(productID string, qty int) bool
	Reduce(ctx context.Context, productID string, qty int) bool
	Increase(ctx context.Context, productID string, qty int)
	UpdateStock(ctx context.Context, productID string, qty int)
	GetStock(productID string) int
	Snapshot() map[string]int
}

type stockAppImpl struct {
	mu          sync.Mutex
	ledger      map[string]int
	stockRepo   stockrepo.StockRepository
	productRepo productrepo.ProductRepository
}

func NewStockApp(stockRepo stockrepo.StockRepository, productRepo productrepo.ProductRepository) StockApp {
	return &stockAppImpl{
		ledger:      make(map[string]int),
		stockRepo:   stockRepo,
		productRepo: productRepo,
	}
}

// Load rehydrates the persisted ledger, seeding from the catalog only when none exists.
func (s *stockAppImpl) Load(ctx context.Context) error {
	ledger, found, err := s.stockRepo.Load(ctx)
	if err != nil {
		logger.Error("[StockLoad] err stockRepo.Load", zap.String("error", err.Error()))
		return err
	}
	if !found {
		return s.Initialize(ctx)
	}

	s.mu.Lock()
	s.ledger = make(map[string]int, len(ledger))
	for id, qty := range ledger {
		if qty < 0 {
			qty = 0
		}
		s.ledger[id] = qty
	}
	s.mu.Unlock()
	return nil
}

// Initialize resets the ledger to the catalog's seed stock values.
func (s *stockAppImpl) Initialize(ctx context.Context) error {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		logger.Error("[StockInitialize] err productRepo.ListAll", zap.String("error", err.Error()))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = make(map[string]int, len(products))
	for _, p := range products {
		s.ledger[p.ID] = max(p.Stock, 0)
	}
	s.persistLocked(ctx)
	return nil
}

func (s *stockAppImpl) IsAvailable(productID string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return qty <= s.ledger[productID]
}

// Reduce checks and decrements under one lock; false leaves the ledger untouched.
func (s *stockAppImpl) Reduce(ctx context.Context, productID string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.ledger[productID]
	if current < qty {
		return false
	}
	s.ledger[productID] = current - qty
	s.persistLocked(ctx)
	return true
}

func (s *stockAppImpl) Increase(ctx context.Context, productID string, qty int) {
	if qty <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger[productID] += qty
	s.persistLocked(ctx)
}

func (s *stockAppImpl) UpdateStock(ctx context.Context, productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger[productID] = max(qty, 0)
	s.persistLocked(ctx)
}

func (s *stockAppImpl) GetStock(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger[productID]
}

func (s *stockAppImpl) Snapshot() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.ledger))
	for id, qty := range s.ledger {
		out[id] = qty
	}
	return out
}

// persistLocked writes the snapshot; failures are logged and the in-memory ledger stays authoritative.
func (s *stockAppImpl) persistLocked(ctx context.Context) {
	snapshot := make(map[string]int, len(s.ledger))
	for id, qty := range s.ledger {
		snapshot[id] = qty
	}
	if err := s.stockRepo.Save(ctx, snapshot); err != nil {
		logger.Error("[StockPersist] err stockRepo.Save", zap.String("error", err.Error()))
	}
}

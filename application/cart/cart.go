package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/muhammadheryan/snackstore/application/stock"
	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	cartrepo "github.com/muhammadheryan/snackstore/repository/cart"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"github.com/muhammadheryan/snackstore/utils/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartApp owns one merchant's cart. Every quantity change is mirrored on the
// shared stock ledger, so the cart never holds more than the ledger released to it.
type CartApp interface {
	Load(ctx context.Context) error
	AddToCart(ctx context.Context, product model.Product, quantity int) bool
	RemoveFromCart(ctx context.Context, productID string)
	UpdateQuantity(ctx context.Context, productID string, quantity int) bool
	ClearCart(ctx context.Context)
	ConsumeCart(ctx context.Context)
	IsInCart(productID string) bool
	Items() []model.CartItem
	IsWholesaleMode() bool
	ToggleWholesaleMode(ctx context.Context)
	DeliverySchedule() *model.DeliverySchedule
	SetDeliverySchedule(ctx context.Context, schedule model.DeliverySchedule)
	ClearDeliverySchedule(ctx context.Context)
	GetCartSummary() model.CartSummary
	ValidateOrder() model.ValidationResult
	Snapshot() model.CartResponse
	CheckoutSnapshot() (model.ValidationResult, model.CartResponse)
}

type cartAppImpl struct {
	userID uint64

	mu            sync.Mutex
	items         []model.CartItem
	wholesaleMode bool
	schedule      *model.DeliverySchedule

	deliveryFee decimal.Decimal
	stockApp    stock.StockApp
	cartRepo    cartrepo.CartRepository
	metrics     *metrics.StoreMetrics
}

func NewCartApp(cfg config.CartConfig, userID uint64, stockApp stock.StockApp, cartRepo cartrepo.CartRepository, m *metrics.StoreMetrics) CartApp {
	return &cartAppImpl{
		userID:        userID,
		items:         make([]model.CartItem, 0),
		wholesaleMode: cfg.DefaultWholesaleMode,
		deliveryFee:   cfg.DeliveryFee,
		stockApp:      stockApp,
		cartRepo:      cartRepo,
		metrics:       m,
	}
}

func (s *cartAppImpl) Load(ctx context.Context) error {
	items, _, err := s.cartRepo.LoadItems(ctx, s.userID)
	if err != nil {
		logger.Error("[CartLoad] err cartRepo.LoadItems", zap.Uint64("user_id", s.userID), zap.String("error", err.Error()))
		return err
	}
	mode, modeFound, err := s.cartRepo.LoadWholesaleMode(ctx, s.userID)
	if err != nil {
		logger.Error("[CartLoad] err cartRepo.LoadWholesaleMode", zap.Uint64("user_id", s.userID), zap.String("error", err.Error()))
		return err
	}
	schedule, err := s.cartRepo.LoadDeliverySchedule(ctx, s.userID)
	if err != nil {
		logger.Error("[CartLoad] err cartRepo.LoadDeliverySchedule", zap.Uint64("user_id", s.userID), zap.String("error", err.Error()))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if items != nil {
		s.items = items
	}
	if modeFound {
		s.wholesaleMode = mode
	}
	s.schedule = schedule
	return nil
}

// AddToCart clamps the quantity to the product's order bounds (the minimum only
// in wholesale mode) and reserves the increase on the ledger. When the ledger
// cannot cover it the cart is left unchanged and false is returned.
func (s *cartAppImpl) AddToCart(ctx context.Context, product model.Product, quantity int) bool {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wholesaleMode && quantity < product.MinOrderQuantity {
		quantity = product.MinOrderQuantity
	}
	if quantity > product.MaxOrderQuantity {
		quantity = product.MaxOrderQuantity
	}
	unitPrice := product.PriceFor(s.wholesaleMode)

	idx := s.indexOf(product.ID)
	if idx >= 0 {
		existing := s.items[idx].Quantity
		target := min(existing+quantity, product.MaxOrderQuantity)
		delta := target - existing
		if delta > 0 && !s.stockApp.Reduce(ctx, product.ID, delta) {
			logger.Info("[AddToCart] insufficient stock", zap.String("product_id", product.ID), zap.Int("need", delta))
			s.metrics.IncStockRejection("add")
			return false
		}
		s.items[idx].Quantity = target
		s.items[idx].Reprice(unitPrice)
	} else {
		if quantity <= 0 || !s.stockApp.Reduce(ctx, product.ID, quantity) {
			logger.Info("[AddToCart] insufficient stock", zap.String("product_id", product.ID), zap.Int("need", quantity))
			s.metrics.IncStockRejection("add")
			return false
		}
		item := model.CartItem{Product: product, Quantity: quantity}
		item.Reprice(unitPrice)
		s.items = append(s.items, item)
	}

	s.metrics.IncCartMutation("add")
	s.persistItemsLocked(ctx)
	return true
}

// RemoveFromCart releases the held quantity back to the ledger. Unknown ids are a no-op.
func (s *cartAppImpl) RemoveFromCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, productID)
}

func (s *cartAppImpl) removeLocked(ctx context.Context, productID string) {
	idx := s.indexOf(productID)
	if idx < 0 {
		return
	}
	s.stockApp.Increase(ctx, productID, s.items[idx].Quantity)
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.metrics.IncCartMutation("remove")
	s.persistItemsLocked(ctx)
}

// UpdateQuantity sets an absolute quantity, capped at the product maximum.
// Zero or less removes the line.
func (s *cartAppImpl) UpdateQuantity(ctx context.Context, productID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		if s.indexOf(productID) < 0 {
			return false
		}
		s.removeLocked(ctx, productID)
		return true
	}

	idx := s.indexOf(productID)
	if idx < 0 {
		return false
	}
	item := &s.items[idx]
	clamped := min(quantity, item.Product.MaxOrderQuantity)
	delta := clamped - item.Quantity
	switch {
	case delta > 0:
		if !s.stockApp.Reduce(ctx, productID, delta) {
			logger.Info("[UpdateQuantity] insufficient stock", zap.String("product_id", productID), zap.Int("need", delta))
			s.metrics.IncStockRejection("update")
			return false
		}
	case delta < 0:
		s.stockApp.Increase(ctx, productID, -delta)
	}

	item.Quantity = clamped
	item.Reprice(item.Product.PriceFor(s.wholesaleMode))
	s.metrics.IncCartMutation("update")
	s.persistItemsLocked(ctx)
	return true
}

// ClearCart abandons the cart: every held quantity goes back to the ledger.
func (s *cartAppImpl) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		s.stockApp.Increase(ctx, item.Product.ID, item.Quantity)
	}
	s.items = make([]model.CartItem, 0)
	s.metrics.IncCartMutation("clear")
	s.persistItemsLocked(ctx)
}

// ConsumeCart empties the cart after checkout; held stock counts as sold.
func (s *cartAppImpl) ConsumeCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]model.CartItem, 0)
	s.schedule = nil
	s.metrics.IncCartMutation("consume")
	s.persistItemsLocked(ctx)
	s.persistScheduleLocked(ctx)
}

func (s *cartAppImpl) IsInCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

func (s *cartAppImpl) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItemsLocked()
}

func (s *cartAppImpl) IsWholesaleMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wholesaleMode
}

// ToggleWholesaleMode flips the pricing mode and reprices every line.
// Quantities and ledger holdings are untouched.
func (s *cartAppImpl) ToggleWholesaleMode(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wholesaleMode = !s.wholesaleMode
	for i := range s.items {
		s.items[i].Reprice(s.items[i].Product.PriceFor(s.wholesaleMode))
	}
	if err := s.cartRepo.SaveWholesaleMode(ctx, s.userID, s.wholesaleMode); err != nil {
		logger.Error("[ToggleWholesaleMode] err cartRepo.SaveWholesaleMode", zap.Uint64("user_id", s.userID), zap.String("error", err.Error()))
	}
	s.persistItemsLocked(ctx)
}

func (s *cartAppImpl) DeliverySchedule() *model.DeliverySchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.schedule == nil {
		return nil
	}
	sc := *s.schedule
	return &sc
}

func (s *cartAppImpl) SetDeliverySchedule(ctx context.Context, schedule model.DeliverySchedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = &schedule
	s.persistScheduleLocked(ctx)
}

func (s *cartAppImpl) ClearDeliverySchedule(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = nil
	s.persistScheduleLocked(ctx)
}

func (s *cartAppImpl) GetCartSummary() model.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked()
}

// summaryLocked computes savings from both price fields, independent of the active mode.
func (s *cartAppImpl) summaryLocked() model.CartSummary {
	totalItems := 0
	totalPrice := decimal.Zero
	regularTotal := decimal.Zero
	wholesaleTotal := decimal.Zero
	for _, item := range s.items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		totalItems += item.Quantity
		totalPrice = totalPrice.Add(item.Subtotal)
		regularTotal = regularTotal.Add(item.Product.Price.Mul(qty))
		wholesaleTotal = wholesaleTotal.Add(item.Product.WholesalePrice.Mul(qty))
	}

	deliveryFee := decimal.Zero
	if s.schedule != nil {
		deliveryFee = s.deliveryFee
	}

	return model.CartSummary{
		TotalItems:       totalItems,
		TotalPrice:       totalPrice,
		WholesaleSavings: regularTotal.Sub(wholesaleTotal),
		DeliveryFee:      deliveryFee,
		FinalTotal:       totalPrice.Add(deliveryFee),
	}
}

// ValidateOrder collects every violated rule instead of stopping at the first one.
func (s *cartAppImpl) ValidateOrder() model.ValidationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked()
}

func (s *cartAppImpl) validateLocked() model.ValidationResult {
	errs := make([]string, 0)
	if len(s.items) == 0 {
		errs = append(errs, constant.ValidationEmptyCart)
	}
	for _, item := range s.items {
		p := item.Product
		if item.Quantity < p.MinOrderQuantity {
			errs = append(errs, fmt.Sprintf(constant.ValidationMinQuantity, p.Name, p.MinOrderQuantity))
		}
		if item.Quantity > p.MaxOrderQuantity {
			errs = append(errs, fmt.Sprintf(constant.ValidationMaxQuantity, p.Name, p.MaxOrderQuantity))
		}
		if !p.IsAvailable {
			errs = append(errs, fmt.Sprintf(constant.ValidationUnavailable, p.Name))
		}
	}
	if s.wholesaleMode && s.schedule == nil {
		errs = append(errs, constant.ValidationMissingSchedule)
	}

	return model.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

func (s *cartAppImpl) Snapshot() model.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// CheckoutSnapshot validates and copies the cart under one lock, so the
// snapshot is exactly the cart that passed validation.
func (s *cartAppImpl) CheckoutSnapshot() (model.ValidationResult, model.CartResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked(), s.snapshotLocked()
}

func (s *cartAppImpl) snapshotLocked() model.CartResponse {
	var schedule *model.DeliverySchedule
	if s.schedule != nil {
		sc := *s.schedule
		schedule = &sc
	}
	return model.CartResponse{
		Items:            s.copyItemsLocked(),
		IsWholesaleMode:  s.wholesaleMode,
		DeliverySchedule: schedule,
		Summary:          s.summaryLocked(),
	}
}

func (s *cartAppImpl) indexOf(productID string) int {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *cartAppImpl) copyItemsLocked() []model.CartItem {
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *cartAppImpl) persistItemsLocked(ctx context.Context) {
	if err := s.cartRepo.SaveItems(ctx, s.userID, s.copyItemsLocked()); err != nil {
		logger.Error("[CartPersist] err cartRepo.SaveItems", zap.Uint64("user_id", s.userID), zap.String("error", err.Error()))
	}
}

func (s *cartAppImpl) persistScheduleLocked(ctx context.Context) {
	if err := s.cartRepo.SaveDeliverySchedule(ctx, s.userID, s.schedule); err != nil {
		logger.Error("[CartPersist] err cartRepo.SaveDeliverySchedule", zap.Uint64("user_id", s.userID), zap.String("error", err.Error()))
	}
}

package cart_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	appcart "github.com/muhammadheryan/snackstore/application/cart"
	appstock "github.com/muhammadheryan/snackstore/application/stock"
	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/constant"
	cartmocks "github.com/muhammadheryan/snackstore/mocks/repository/cart"
	productmocks "github.com/muhammadheryan/snackstore/mocks/repository/product"
	stockmocks "github.com/muhammadheryan/snackstore/mocks/repository/stock"
	"github.com/muhammadheryan/snackstore/model"
	"github.com/muhammadheryan/snackstore/utils/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const merchant = uint64(7)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func product(id, price, wholesale string, minQty, maxQty int) model.Product {
	return model.Product{
		ID:               id,
		Name:             "Producto " + id,
		Brand:            "Lay's",
		Price:            dec(price),
		WholesalePrice:   dec(wholesale),
		MinOrderQuantity: minQty,
		MaxOrderQuantity: maxQty,
		IsAvailable:      true,
		IsWholesale:      true,
	}
}

type harness struct {
	cart     appcart.CartApp
	stock    appstock.StockApp
	cartRepo *cartmocks.CartRepository
	registry *prometheus.Registry
}

// newHarness wires a cart to a real ledger seeded with ledger; persistence is mocked and always succeeds.
func newHarness(t *testing.T, ledger map[string]int, wholesale bool) *harness {
	t.Helper()
	ctx := context.Background()

	stockRepo := stockmocks.NewStockRepository(t)
	stockRepo.On("Load", mock.Anything).Return(ledger, true, nil).Once()
	stockRepo.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()
	stockApp := appstock.NewStockApp(stockRepo, productmocks.NewProductRepository(t))
	require.NoError(t, stockApp.Load(ctx))

	cartRepo := cartmocks.NewCartRepository(t)
	cartRepo.On("SaveItems", mock.Anything, merchant, mock.Anything).Return(nil).Maybe()
	cartRepo.On("SaveWholesaleMode", mock.Anything, merchant, mock.Anything).Return(nil).Maybe()
	cartRepo.On("SaveDeliverySchedule", mock.Anything, merchant, mock.Anything).Return(nil).Maybe()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	cfg := config.CartConfig{DeliveryFee: dec("15.00"), DefaultWholesaleMode: wholesale}
	return &harness{
		cart:     appcart.NewCartApp(cfg, merchant, stockApp, cartRepo, m),
		stock:    stockApp,
		cartRepo: cartRepo,
		registry: reg,
	}
}

func quantityOf(c appcart.CartApp, productID string) int {
	for _, it := range c.Items() {
		if it.Product.ID == productID {
			return it.Quantity
		}
	}
	return 0
}

func TestCartApp_AddToCart(t *testing.T) {
	tests := []struct {
		name        string
		ledger      map[string]int
		wholesale   bool
		product     model.Product
		qty         int
		want        bool
		wantCartQty int
		wantStock   int
	}{
		{
			name:        "insufficient stock in retail mode is a no-op",
			ledger:      map[string]int{"sku-A": 10},
			product:     product("sku-A", "3.50", "2.80", 12, 120),
			qty:         15,
			want:        false,
			wantCartQty: 0,
			wantStock:   10,
		},
		{
			name:        "wholesale mode raises to minimum order",
			ledger:      map[string]int{"sku-A": 100},
			wholesale:   true,
			product:     product("sku-A", "3.50", "2.80", 12, 120),
			qty:         5,
			want:        true,
			wantCartQty: 12,
			wantStock:   88,
		},
		{
			name:        "retail mode keeps quantity below minimum",
			ledger:      map[string]int{"sku-A": 100},
			product:     product("sku-A", "3.50", "2.80", 12, 120),
			qty:         5,
			want:        true,
			wantCartQty: 5,
			wantStock:   95,
		},
		{
			name:        "quantity above maximum is capped",
			ledger:      map[string]int{"sku-A": 500},
			product:     product("sku-A", "3.50", "2.80", 12, 120),
			qty:         200,
			want:        true,
			wantCartQty: 120,
			wantStock:   380,
		},
		{
			name:        "zero quantity defaults to one",
			ledger:      map[string]int{"sku-A": 10},
			product:     product("sku-A", "3.50", "2.80", 1, 120),
			qty:         0,
			want:        true,
			wantCartQty: 1,
			wantStock:   9,
		},
		{
			name:        "wholesale minimum above stock is a no-op",
			ledger:      map[string]int{"sku-A": 8},
			wholesale:   true,
			product:     product("sku-A", "3.50", "2.80", 12, 120),
			qty:         1,
			want:        false,
			wantCartQty: 0,
			wantStock:   8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.ledger, tt.wholesale)

			got := h.cart.AddToCart(context.Background(), tt.product, tt.qty)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCartQty, quantityOf(h.cart, tt.product.ID))
			assert.Equal(t, tt.wantStock, h.stock.GetStock(tt.product.ID))
			assert.Equal(t, tt.wantCartQty > 0, h.cart.IsInCart(tt.product.ID))
		})
	}
}

func TestCartApp_AddToCart_ExistingEntry(t *testing.T) {
	h := newHarness(t, map[string]int{"sku-A": 200}, false)
	p := product("sku-A", "3.50", "2.80", 12, 120)
	ctx := context.Background()

	require.True(t, h.cart.AddToCart(ctx, p, 100))
	require.True(t, h.cart.AddToCart(ctx, p, 15))
	assert.Equal(t, 115, quantityOf(h.cart, "sku-A"))
	assert.Equal(t, 85, h.stock.GetStock("sku-A"))

	// only the delta up to the maximum is reserved
	require.True(t, h.cart.AddToCart(ctx, p, 20))
	assert.Equal(t, 120, quantityOf(h.cart, "sku-A"))
	assert.Equal(t, 80, h.stock.GetStock("sku-A"))

	// at the cap nothing more is reserved
	require.True(t, h.cart.AddToCart(ctx, p, 5))
	assert.Equal(t, 120, quantityOf(h.cart, "sku-A"))
	assert.Equal(t, 80, h.stock.GetStock("sku-A"))

	items := h.cart.Items()
	require.Len(t, items, 1)
	assert.True(t, dec("420.00").Equal(items[0].Subtotal))
}

func TestCartApp_AddToCart_ExistingEntryInsufficientStock(t *testing.T) {
	h := newHarness(t, map[string]int{"sku-A": 30}, false)
	p := product("sku-A", "3.50", "2.80", 12, 120)
	ctx := context.Background()

	require.True(t, h.cart.AddToCart(ctx, p, 20))
	assert.False(t, h.cart.AddToCart(ctx, p, 20))
	assert.Equal(t, 20, quantityOf(h.cart, "sku-A"))
	assert.Equal(t, 10, h.stock.GetStock("sku-A"))
	expected := `
# HELP cart_stock_rejections_total Cart mutations skipped because the ledger could not cover them.
# TYPE cart_stock_rejections_total counter
cart_stock_rejections_total{operation="add"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(h.registry, strings.NewReader(expected), "cart_stock_rejections_total"))
}

func TestCartApp_LedgerDeltaMatchesCartDelta(t *testing.T) {
	h := newHarness(t, map[string]int{"sku-A": 300, "sku-B": 300}, true)
	ctx := context.Background()
	products := []model.Product{
		product("sku-A", "3.50", "2.80", 12, 120),
		product("sku-B", "5.00", "4.10", 6, 60),
	}

	for _, qty := range []int{1, 7, 12, 30, 90} {
		for _, p := range products {
			beforeCart := quantityOf(h.cart, p.ID)
			beforeStock := h.stock.GetStock(p.ID)

			h.cart.AddToCart(ctx, p, qty)

			cartDelta := quantityOf(h.cart, p.ID) - beforeCart
			stockDelta := beforeStock - h.stock.GetStock(p.ID)
			assert.Equal(t, cartDelta, stockDelta, "product %s qty %d", p.ID, qty)
			assert.LessOrEqual(t, quantityOf(h.cart, p.ID), p.MaxOrderQuantity)
		}
	}
}

func TestCartApp_RemoveFromCart(t *testing.T) {
	h := newHarness(t, map[string]int{"sku-A": 50}, false)
	p := product("sku-A", "3.50", "2.80", 12, 120)
	ctx := context.Background()

	require.True(t, h.cart.AddToCart(ctx, p, 20))
	require.Equal(t, 30, h.stock.GetStock("sku-A"))

	h.cart.RemoveFromCart(ctx, "sku-A")
	assert.Equal(t, 50, h.stock.GetStock("sku-A"))
	assert.False(t, h.cart.IsInCart("sku-A"))

	// second remove has nothing to release
	h.cart.RemoveFromCart(ctx, "sku-A")
	assert.Equal(t, 50, h.stock.GetStock("sku-A"))
}

func TestCartApp_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name        string
		qty         int
		want        bool
		wantCartQty int
		wantStock   int
	}{
		{name: "increase reserves the delta", qty: 30, want: true, wantCartQty: 30, wantStock: 70},
		{name: "decrease releases the delta", qty: 5, want: true, wantCartQty: 5, wantStock: 95},
		{name: "capped at maximum", qty: 500, want: true, wantCartQty: 120, wantStock: 0},
		{name: "zero removes the line", qty: 0, want: true, wantCartQty: 0, wantStock: 100},
		{name: "negative removes the line", qty: -3, want: true, wantCartQty: 0, wantStock: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, map[string]int{"sku-A": 120}, false)
			p := product("sku-A", "3.50", "2.80", 1, 120)
			ctx := context.Background()
			require.True(t, h.cart.AddToCart(ctx, p, 20))

			got := h.cart.UpdateQuantity(ctx, "sku-A", tt.qty)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCartQty, quantityOf(h.cart, "sku-A"))
			assert.Equal(t, tt.wantStock, h.stock.GetStock("sku-A"))
		})
	}
}

func TestCartApp_UpdateQuantity_Rejections(t *testing.T) {
	h := newHarness(t, map[string]int{"sku-A": 25}, false)
	p := product("sku-A", "3.50", "2.80", 1, 120)
	ctx := context.Background()
	require.True(t, h.cart.AddToCart(ctx, p, 20))

	assert.False(t, h.cart.UpdateQuantity(ctx, "sku-A", 40), "only 5 left on the ledger")
	assert.Equal(t, 20, quantityOf(h.cart, "sku-A"))
	assert.Equal(t, 5, h.stock.GetStock("sku-A"))

	assert.False(t, h.cart.UpdateQuantity(ctx, "sku-missing", 3))
	assert.False(t, h.cart.UpdateQuantity(ctx, "sku-missing", 0))
}

func TestCartApp_ToggleWholesaleModeRoundTrip(t *testing.T) {
	h := newHarness(t, map[string]int{"sku-A": 100, "sku-B": 100}, true)
	ctx := context.Background()
	require.True(t, h.cart.AddToCart(ctx, product("sku-A", "3.50", "2.80", 12, 120), 24))
	require.True(t, h.cart.AddToCart(ctx, product("sku-B", "5.00", "4.10", 6, 60), 6))

	before := h.cart.Items()
	h.cart.ToggleWholesaleMode(ctx)
	assert.False(t, h.cart.IsWholesaleMode())

	toggled := h.cart.Items()
	assert.True(t, dec("3.50").Equal(toggled[0].UnitPrice))
	assert.True(t, dec("84.00").Equal(toggled[0].Subtotal))
	assert.Equal(t, 76, h.stock.GetStock("sku-A"), "toggling does not touch the ledger")

	h.cart.ToggleWholesaleMode(ctx)
	after := h.cart.Items()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Quantity, after[i].Quantity)
		assert.True(t, before[i].UnitPrice.Equal(after[i].UnitPrice))
		assert.True(t, before[i].Subtotal.Equal(after[i].Subtotal))
	}
}

func TestCartApp_GetCartSummary(t *testing.T) {
	h := newHarness(t, map[string]int{"sku-A": 100, "sku-B": 100}, true)
	ctx := context.Background()
	require.True(t, h.cart.AddToCart(ctx, product("sku-A", "3.50", "2.80", 12, 120), 12))
	require.True(t, h.cart.AddToCart(ctx, product("sku-B", "5.00", "4.10", 6, 60), 10))

	summary := h.cart.GetCartSummary()
	assert.Equal(t, 22, summary.TotalItems)
	// 12*2.80 + 10*4.10
	assert.True(t, dec("74.60").Equal(summary.TotalPrice), summary.TotalPrice.String())
	// (42.00+50.00) - 74.60
	assert.True(t, dec("17.40").Equal(summary.WholesaleSavings), summary.WholesaleSavings.String())
	assert.True(t, summary.DeliveryFee.IsZero())
	assert.True(t, summary.TotalPrice.Equal(summary.FinalTotal))

	sum := decimal.Zero
	byQty := decimal.Zero
	for _, it := range h.cart.Items() {
		sum = sum.Add(it.Subtotal)
		byQty = byQty.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	assert.True(t, sum.Equal(summary.TotalPrice))
	assert.True(t, byQty.Equal(summary.TotalPrice))

	h.cart.SetDeliverySchedule(ctx, model.DeliverySchedule{ID: "s1", Date: "2026-10-20", TimeSlot: "Mañana (8:00 - 12:00)", Address: "Av. Arequipa 123"})
	summary = h.cart.GetCartSummary()
	assert.True(t, dec("15.00").Equal(summary.DeliveryFee))
	assert.True(t, dec("89.60").Equal(summary.FinalTotal))

	// savings do not depend on the active mode
	h.cart.ToggleWholesaleMode(ctx)
	assert.True(t, dec("17.40").Equal(h.cart.GetCartSummary().WholesaleSavings))
}

func TestCartApp_ValidateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("missing delivery schedule in wholesale mode", func(t *testing.T) {
		h := newHarness(t, map[string]int{"sku-A": 100, "sku-B": 100}, true)
		require.True(t, h.cart.AddToCart(ctx, product("sku-A", "3.00", "2.50", 12, 120), 12))
		require.True(t, h.cart.AddToCart(ctx, product("sku-B", "1.50", "1.25", 12, 120), 12))
		require.True(t, dec("45.00").Equal(h.cart.GetCartSummary().TotalPrice))

		got := h.cart.ValidateOrder()
		assert.False(t, got.IsValid)
		assert.Equal(t, []string{constant.ValidationMissingSchedule}, got.Errors)
	})

	t.Run("empty cart", func(t *testing.T) {
		h := newHarness(t, map[string]int{}, false)
		got := h.cart.ValidateOrder()
		assert.False(t, got.IsValid)
		assert.Equal(t, []string{constant.ValidationEmptyCart}, got.Errors)
	})

	t.Run("collects every violation", func(t *testing.T) {
		h := newHarness(t, map[string]int{"sku-A": 100, "sku-B": 100}, false)
		below := product("sku-A", "3.00", "2.50", 12, 120)
		unavailable := product("sku-B", "1.50", "1.25", 1, 120)
		unavailable.IsAvailable = false
		require.True(t, h.cart.AddToCart(ctx, below, 3))
		require.True(t, h.cart.AddToCart(ctx, unavailable, 2))

		got := h.cart.ValidateOrder()
		assert.False(t, got.IsValid)
		assert.Equal(t, []string{
			"Producto sku-A: cantidad mínima es 12",
			"Producto sku-B: producto no disponible",
		}, got.Errors)
	})

	t.Run("valid wholesale order with schedule", func(t *testing.T) {
		h := newHarness(t, map[string]int{"sku-A": 100}, true)
		require.True(t, h.cart.AddToCart(ctx, product("sku-A", "3.00", "2.50", 12, 120), 12))
		h.cart.SetDeliverySchedule(ctx, model.DeliverySchedule{ID: "s1", Date: "2026-10-20", Address: "Av. Arequipa 123"})

		got := h.cart.ValidateOrder()
		assert.True(t, got.IsValid)
		assert.Empty(t, got.Errors)
	})
}

func TestCartApp_ClearAndConsume(t *testing.T) {
	ctx := context.Background()
	schedule := model.DeliverySchedule{ID: "s1", Date: "2026-10-20", Address: "Av. Arequipa 123"}

	t.Run("clear releases held stock", func(t *testing.T) {
		h := newHarness(t, map[string]int{"sku-A": 100, "sku-B": 40}, true)
		require.True(t, h.cart.AddToCart(ctx, product("sku-A", "3.00", "2.50", 12, 120), 30))
		require.True(t, h.cart.AddToCart(ctx, product("sku-B", "1.50", "1.25", 12, 120), 12))
		h.cart.SetDeliverySchedule(ctx, schedule)

		h.cart.ClearCart(ctx)
		assert.Empty(t, h.cart.Items())
		assert.Equal(t, 100, h.stock.GetStock("sku-A"))
		assert.Equal(t, 40, h.stock.GetStock("sku-B"))
		assert.NotNil(t, h.cart.DeliverySchedule())
	})

	t.Run("consume keeps stock sold and drops the schedule", func(t *testing.T) {
		h := newHarness(t, map[string]int{"sku-A": 100}, true)
		require.True(t, h.cart.AddToCart(ctx, product("sku-A", "3.00", "2.50", 12, 120), 30))
		h.cart.SetDeliverySchedule(ctx, schedule)

		h.cart.ConsumeCart(ctx)
		assert.Empty(t, h.cart.Items())
		assert.Equal(t, 70, h.stock.GetStock("sku-A"))
		assert.Nil(t, h.cart.DeliverySchedule())
	})
}

func TestCartApp_Load(t *testing.T) {
	ctx := context.Background()
	p := product("sku-A", "3.00", "2.50", 12, 120)
	item := model.CartItem{Product: p, Quantity: 12}
	item.Reprice(p.WholesalePrice)
	schedule := &model.DeliverySchedule{ID: "s1", Date: "2026-10-20", Address: "Av. Arequipa 123"}

	t.Run("rehydrates persisted snapshot", func(t *testing.T) {
		h := newHarness(t, map[string]int{}, true)
		h.cartRepo.On("LoadItems", mock.Anything, merchant).Return([]model.CartItem{item}, true, nil).Once()
		h.cartRepo.On("LoadWholesaleMode", mock.Anything, merchant).Return(false, true, nil).Once()
		h.cartRepo.On("LoadDeliverySchedule", mock.Anything, merchant).Return(schedule, nil).Once()

		require.NoError(t, h.cart.Load(ctx))
		assert.Equal(t, []model.CartItem{item}, h.cart.Items())
		assert.False(t, h.cart.IsWholesaleMode())
		assert.Equal(t, schedule, h.cart.DeliverySchedule())
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		h := newHarness(t, map[string]int{}, true)
		h.cartRepo.On("LoadItems", mock.Anything, merchant).Return(nil, false, nil).Once()
		h.cartRepo.On("LoadWholesaleMode", mock.Anything, merchant).Return(false, false, nil).Once()
		h.cartRepo.On("LoadDeliverySchedule", mock.Anything, merchant).Return(nil, nil).Once()

		require.NoError(t, h.cart.Load(ctx))
		assert.Empty(t, h.cart.Items())
		assert.True(t, h.cart.IsWholesaleMode())
		assert.Nil(t, h.cart.DeliverySchedule())
	})

	t.Run("storage failure is returned", func(t *testing.T) {
		h := newHarness(t, map[string]int{}, true)
		h.cartRepo.On("LoadItems", mock.Anything, merchant).Return(nil, false, errors.New("redis down")).Once()

		assert.Error(t, h.cart.Load(ctx))
	})
}

func TestCartApp_CheckoutSnapshot(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, map[string]int{"sku-A": 100}, true)
	require.True(t, h.cart.AddToCart(ctx, product("sku-A", "3.00", "2.50", 12, 120), 24))

	validation, snapshot := h.cart.CheckoutSnapshot()
	assert.False(t, validation.IsValid)
	assert.Equal(t, []string{constant.ValidationMissingSchedule}, validation.Errors)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 24, snapshot.Items[0].Quantity)

	schedule := model.DeliverySchedule{ID: "s1", Date: "2026-10-20", Address: "Av. Arequipa 123"}
	h.cart.SetDeliverySchedule(ctx, schedule)
	validation, snapshot = h.cart.CheckoutSnapshot()
	assert.True(t, validation.IsValid)
	assert.Equal(t, &schedule, snapshot.DeliverySchedule)
	assert.True(t, dec("75.00").Equal(snapshot.Summary.FinalTotal), snapshot.Summary.FinalTotal.String())

	// the snapshot is a copy
	snapshot.Items[0].Quantity = 1
	assert.Equal(t, 24, quantityOf(h.cart, "sku-A"))
}

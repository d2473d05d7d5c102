package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	appcart "github.com/muhammadheryan/snackstore/application/cart"
	"github.com/muhammadheryan/snackstore/application/schedule"
	appstock "github.com/muhammadheryan/snackstore/application/stock"
	"github.com/muhammadheryan/snackstore/cmd/config"
	productappmocks "github.com/muhammadheryan/snackstore/mocks/application/product"
	usermocks "github.com/muhammadheryan/snackstore/mocks/application/user"
	cartrepomocks "github.com/muhammadheryan/snackstore/mocks/repository/cart"
	productrepomocks "github.com/muhammadheryan/snackstore/mocks/repository/product"
	stockrepomocks "github.com/muhammadheryan/snackstore/mocks/repository/stock"
	"github.com/muhammadheryan/snackstore/model"
	"github.com/muhammadheryan/snackstore/transport"
	"github.com/muhammadheryan/snackstore/utils/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartsArePerMerchant(t *testing.T) {
	const (
		rositaToken = "tok-rosita"
		pepeToken   = "tok-pepe"
	)
	ctx := context.Background()
	papas := model.Product{
		ID:               "papas-lays",
		Name:             "Papas Lay's Clásicas",
		Price:            decimal.RequireFromString("3.00"),
		WholesalePrice:   decimal.RequireFromString("2.50"),
		MinOrderQuantity: 1,
		MaxOrderQuantity: 120,
		IsAvailable:      true,
	}

	stockRepo := stockrepomocks.NewStockRepository(t)
	stockRepo.On("Load", mock.Anything).Return(map[string]int{"papas-lays": 10}, true, nil).Once()
	stockRepo.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()
	stockApp := appstock.NewStockApp(stockRepo, productrepomocks.NewProductRepository(t))
	require.NoError(t, stockApp.Load(ctx))

	cartRepo := cartrepomocks.NewCartRepository(t)
	for _, userID := range []uint64{1, 2} {
		cartRepo.On("LoadItems", mock.Anything, userID).Return(nil, false, nil).Once()
		cartRepo.On("LoadWholesaleMode", mock.Anything, userID).Return(false, false, nil).Once()
		cartRepo.On("LoadDeliverySchedule", mock.Anything, userID).Return(nil, nil).Once()
	}
	cartRepo.On("SaveItems", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	cartRepo.On("SaveDeliverySchedule", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	cfg := config.CartConfig{DeliveryFee: decimal.RequireFromString("15.00"), ScheduleWindowStartDay: 1, ScheduleWindowEndDay: 30}
	carts := appcart.NewCarts(cfg, stockApp, cartRepo, metrics.New(prometheus.NewRegistry()))

	userApp := usermocks.NewUserApp(t)
	userApp.On("ValidateToken", mock.Anything, rositaToken).Return(uint64(1), nil)
	userApp.On("ValidateToken", mock.Anything, pepeToken).Return(uint64(2), nil)
	productApp := productappmocks.NewProductApp(t)
	productApp.On("GetProduct", mock.Anything, "papas-lays").Return(&model.ProductStockResponse{Product: papas}, nil)

	h := transport.NewTransport(&transport.RestHandler{
		UserApp:      userApp,
		ProductApp:   productApp,
		Carts:        carts,
		SchedulerApp: schedule.NewSchedulerApp(cfg, carts),
	}, internalKey)

	getCart := func(token string) model.CartResponse {
		t.Helper()
		rec, env := do(t, h, http.MethodGet, "/cart", token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var res model.CartResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		return res
	}

	rec, _ := do(t, h, http.MethodPost, "/cart/items", rositaToken, `{"product_id":"papas-lays","quantity":7}`)
	require.Equal(t, http.StatusOK, rec.Code)

	date := time.Now().AddDate(0, 0, 2).Format(time.DateOnly)
	rec, _ = do(t, h, http.MethodPut, "/cart/schedule", rositaToken,
		`{"date":"`+date+`","time_slot_id":"morning","zone_id":"lima-centro","address":"Jr. Junín 455"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	pepe := getCart(pepeToken)
	assert.Empty(t, pepe.Items)
	assert.Equal(t, 0, pepe.Summary.TotalItems)
	assert.Nil(t, pepe.DeliverySchedule)

	// both carts reserve from the same ledger: 3 units are left
	rec, _ = do(t, h, http.MethodPost, "/cart/items", pepeToken, `{"product_id":"papas-lays","quantity":5}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec, _ = do(t, h, http.MethodPost, "/cart/items", pepeToken, `{"product_id":"papas-lays","quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, stockApp.GetStock("papas-lays"))

	rec, _ = do(t, h, http.MethodDelete, "/cart", pepeToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, stockApp.GetStock("papas-lays"))

	rosita := getCart(rositaToken)
	require.Len(t, rosita.Items, 1)
	assert.Equal(t, 7, rosita.Items[0].Quantity)
	require.NotNil(t, rosita.DeliverySchedule)
	assert.Equal(t, date, rosita.DeliverySchedule.Date)
}

package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appmetrics "github.com/muhammadheryan/snackstore/application/metrics"
	"github.com/muhammadheryan/snackstore/constant"
	metricsrepomocks "github.com/muhammadheryan/snackstore/mocks/repository/metrics"
	txmocks "github.com/muhammadheryan/snackstore/mocks/repository/tx"
	"github.com/muhammadheryan/snackstore/model"
	cerr "github.com/muhammadheryan/snackstore/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var order = model.Order{
	ID:      "FL-2026-1017-321",
	Total:   decimal.RequireFromString("61.80"),
	Savings: decimal.RequireFromString("9.60"),
	Items: []model.OrderItem{
		{ID: "inka-chips", Name: "Inka Chips", Quantity: 12, Subtotal: decimal.RequireFromString("46.80")},
	},
	UserID: 7,
}

func assertCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T", err)
	assert.Equal(t, constant.ErrorTypeCode[code], ce.ErrorCode())
}

func TestMetricsApp_UpdateMetrics(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		metricsRepo *metricsrepomocks.MetricsRepository
	}
	tx := &sqlx.Tx{}
	matchUpdate := mock.MatchedBy(func(u *model.MetricsUpdate) bool {
		return u.Total.Equal(order.Total) && u.Savings.Equal(order.Savings) && len(u.Items) == 1
	})

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name: "success: both upserts committed",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.metricsRepo.On("UpsertMetricsTx", mock.Anything, tx, uint64(7), matchUpdate, mock.AnythingOfType("time.Time")).Return(nil).Once()
				f.metricsRepo.On("UpsertProductPurchasesTx", mock.Anything, tx, uint64(7), order.Items).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "error: begin fails",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
		},
		{
			name: "error: metrics upsert rolls back",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.metricsRepo.On("UpsertMetricsTx", mock.Anything, tx, uint64(7), matchUpdate, mock.Anything).Return(errors.New("deadlock")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
		},
		{
			name: "error: product upsert rolls back",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.metricsRepo.On("UpsertMetricsTx", mock.Anything, tx, uint64(7), matchUpdate, mock.Anything).Return(nil).Once()
				f.metricsRepo.On("UpsertProductPurchasesTx", mock.Anything, tx, uint64(7), order.Items).Return(errors.New("deadlock")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
		},
		{
			name: "error: commit fails",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.metricsRepo.On("UpsertMetricsTx", mock.Anything, tx, uint64(7), matchUpdate, mock.Anything).Return(nil).Once()
				f.metricsRepo.On("UpsertProductPurchasesTx", mock.Anything, tx, uint64(7), order.Items).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(errors.New("connection reset")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:      txmocks.NewTxRepository(t),
				metricsRepo: metricsrepomocks.NewMetricsRepository(t),
			}
			tt.mockCall(f)

			err := appmetrics.NewMetricsApp(f.txRepo, f.metricsRepo).UpdateMetrics(context.Background(), 7, order)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			assertCode(t, err, constant.ErrInternal)
		})
	}
}

func TestMetricsApp_GetDashboard(t *testing.T) {
	lastOrder := time.Date(2026, time.October, 16, 11, 0, 0, 0, time.UTC)
	totals := &model.MerchantMetrics{
		UserID:       7,
		TotalOrders:  3,
		TotalSpent:   decimal.RequireFromString("210.40"),
		TotalSavings: decimal.RequireFromString("31.20"),
		TotalItems:   48,
		LastOrderAt:  &lastOrder,
	}
	top := []model.ProductPurchase{
		{ProductID: "inka-chips", Name: "Inka Chips", Quantity: 36, Spent: decimal.RequireFromString("140.40")},
		{ProductID: "tor-tees", Name: "Tor-Tees", Quantity: 12, Spent: decimal.RequireFromString("70.00")},
	}

	t.Run("success", func(t *testing.T) {
		repo := metricsrepomocks.NewMetricsRepository(t)
		repo.On("GetMetrics", mock.Anything, uint64(7)).Return(totals, nil).Once()
		repo.On("TopProducts", mock.Anything, uint64(7), 5).Return(top, nil).Once()

		got, err := appmetrics.NewMetricsApp(txmocks.NewTxRepository(t), repo).GetDashboard(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, *totals, got.Metrics)
		assert.Equal(t, top, got.TopProducts)
	})

	t.Run("error: totals lookup fails", func(t *testing.T) {
		repo := metricsrepomocks.NewMetricsRepository(t)
		repo.On("GetMetrics", mock.Anything, uint64(7)).Return(nil, errors.New("db down")).Once()

		_, err := appmetrics.NewMetricsApp(txmocks.NewTxRepository(t), repo).GetDashboard(context.Background(), 7)
		assertCode(t, err, constant.ErrInternal)
	})

	t.Run("error: top products lookup fails", func(t *testing.T) {
		repo := metricsrepomocks.NewMetricsRepository(t)
		repo.On("GetMetrics", mock.Anything, uint64(7)).Return(totals, nil).Once()
		repo.On("TopProducts", mock.Anything, uint64(7), 5).Return(nil, errors.New("db down")).Once()

		_, err := appmetrics.NewMetricsApp(txmocks.NewTxRepository(t), repo).GetDashboard(context.Background(), 7)
		assertCode(t, err, constant.ErrInternal)
	})
}

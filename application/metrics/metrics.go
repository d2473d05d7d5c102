package metrics

import (
	"context"
	"time"

	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	metricsrepo "github.com/muhammadheryan/snackstore/repository/metrics"
	txrepo "github.com/muhammadheryan/snackstore/repository/tx"
	"github.com/muhammadheryan/snackstore/utils/errors"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"go.uber.org/zap"
)

const topProductsLimit = 5

// MetricsApp keeps the per-merchant purchase totals shown on the dashboard.
type MetricsApp interface {
	UpdateMetrics(ctx context.Context, userID uint64, order model.Order) error
	GetDashboard(ctx context.Context, userID uint64) (*model.DashboardResponse, error)
}

type metricsAppImpl struct {
	txRepo      txrepo.TxRepository
	metricsRepo metricsrepo.MetricsRepository
	now         func() time.Time
}

func NewMetricsApp(txRepo txrepo.TxRepository, metricsRepo metricsrepo.MetricsRepository) MetricsApp {
	return &metricsAppImpl{txRepo: txRepo, metricsRepo: metricsRepo, now: time.Now}
}

// UpdateMetrics folds one order into the totals and per-product counters in a single transaction.
func (s *metricsAppImpl) UpdateMetrics(ctx context.Context, userID uint64, order model.Order) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateMetrics] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	update := &model.MetricsUpdate{
		Total:   order.Total,
		Savings: order.Savings,
		Items:   order.Items,
	}
	if err := s.metricsRepo.UpsertMetricsTx(ctx, tx, userID, update, s.now()); err != nil {
		logger.Error("[UpdateMetrics] upsert metrics", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.metricsRepo.UpsertProductPurchasesTx(ctx, tx, userID, order.Items); err != nil {
		logger.Error("[UpdateMetrics] upsert product purchases", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateMetrics] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *metricsAppImpl) GetDashboard(ctx context.Context, userID uint64) (*model.DashboardResponse, error) {
	m, err := s.metricsRepo.GetMetrics(ctx, userID)
	if err != nil {
		logger.Error("[GetDashboard] get metrics", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	top, err := s.metricsRepo.TopProducts(ctx, userID, topProductsLimit)
	if err != nil {
		logger.Error("[GetDashboard] top products", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.DashboardResponse{Metrics: *m, TopProducts: top}, nil
}

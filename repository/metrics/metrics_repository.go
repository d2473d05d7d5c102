package metrics

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/snackstore/model"
	"github.com/shopspring/decimal"
)

type MetricsRepository interface {
	UpsertMetricsTx(ctx context.Context, tx *sqlx.Tx, userID uint64, update *model.MetricsUpdate, at time.Time) error
	UpsertProductPurchasesTx(ctx context.Context, tx *sqlx.Tx, userID uint64, items []model.OrderItem) error
	GetMetrics(ctx context.Context, userID uint64) (*model.MerchantMetrics, error)
	TopProducts(ctx context.Context, userID uint64, limit int) ([]model.ProductPurchase, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewMetricsRepository(conn *sqlx.DB) MetricsRepository {
	return &SQL{conn: conn}
}

const (
	upsertMetricsQuery = `INSERT INTO merchant_metrics (user_id, total_orders, total_spent, total_savings, total_items, last_order_at)
VALUES (?, 1, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  total_orders = total_orders + 1,
  total_spent = total_spent + VALUES(total_spent),
  total_savings = total_savings + VALUES(total_savings),
  total_items = total_items + VALUES(total_items),
  last_order_at = VALUES(last_order_at)`

	upsertPurchaseQuery = `INSERT INTO merchant_product_purchase (user_id, product_id, name, quantity, spent)
VALUES (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name = VALUES(name),
  quantity = quantity + VALUES(quantity),
  spent = spent + VALUES(spent)`

	getMetricsQuery  = `SELECT user_id, total_orders, total_spent, total_savings, total_items, last_order_at FROM merchant_metrics WHERE user_id = ?`
	topProductsQuery = `SELECT product_id, name, quantity, spent FROM merchant_product_purchase WHERE user_id = ? ORDER BY quantity DESC, product_id LIMIT ?`
)

func (r *SQL) UpsertMetricsTx(ctx context.Context, tx *sqlx.Tx, userID uint64, update *model.MetricsUpdate, at time.Time) error {
	var items int64
	for _, it := range update.Items {
		items += int64(it.Quantity)
	}
	_, err := tx.ExecContext(ctx, upsertMetricsQuery, userID, update.Total, update.Savings, items, at)
	return err
}

func (r *SQL) UpsertProductPurchasesTx(ctx context.Context, tx *sqlx.Tx, userID uint64, items []model.OrderItem) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, upsertPurchaseQuery, userID, it.ID, it.Name, it.Quantity, it.Subtotal); err != nil {
			return err
		}
	}
	return nil
}

// GetMetrics returns zeroed metrics for a merchant without orders.
func (r *SQL) GetMetrics(ctx context.Context, userID uint64) (*model.MerchantMetrics, error) {
	var m model.MerchantMetrics
	if err := r.conn.GetContext(ctx, &m, getMetricsQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &model.MerchantMetrics{UserID: userID, TotalSpent: decimal.Zero, TotalSavings: decimal.Zero}, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *SQL) TopProducts(ctx context.Context, userID uint64, limit int) ([]model.ProductPurchase, error) {
	items := make([]model.ProductPurchase, 0, limit)
	if err := r.conn.SelectContext(ctx, &items, topProductsQuery, userID, limit); err != nil {
		return nil, err
	}
	return items, nil
}

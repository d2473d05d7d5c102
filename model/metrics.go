package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type MerchantMetrics struct {
	UserID       uint64          `db:"user_id" json:"user_id"`
	TotalOrders  int64           `db:"total_orders" json:"total_orders"`
	TotalSpent   decimal.Decimal `db:"total_spent" json:"total_spent"`
	TotalSavings decimal.Decimal `db:"total_savings" json:"total_savings"`
	TotalItems   int64           `db:"total_items" json:"total_items"`
	LastOrderAt  *time.Time      `db:"last_order_at" json:"last_order_at,omitempty"`
}

type ProductPurchase struct {
	ProductID string          `db:"product_id" json:"product_id"`
	Name      string          `db:"name" json:"name"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	Spent     decimal.Decimal `db:"spent" json:"spent"`
}

type MetricsUpdate struct {
	Total   decimal.Decimal
	Savings decimal.Decimal
	Items   []OrderItem
}

type DashboardResponse struct {
	Metrics     MerchantMetrics   `json:"metrics"`
	TopProducts []ProductPurchase `json:"top_products"`
}

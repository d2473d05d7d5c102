package model

import (
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/shopspring/decimal"
)

// OrderItem is a snapshot of a cart line, detached from the live catalog.
type OrderItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Weight    string          `json:"weight"`
}

type Order struct {
	ID               string               `json:"id"`
	Date             string               `json:"date"`
	Status           constant.OrderStatus `json:"status"`
	Total            decimal.Decimal      `json:"total"`
	WholesaleTotal   decimal.Decimal      `json:"wholesale_total"`
	Savings          decimal.Decimal      `json:"savings"`
	Items            []OrderItem          `json:"items"`
	TrackingNumber   string               `json:"tracking_number,omitempty"`
	DeliveryDate     string               `json:"delivery_date,omitempty"`
	DeliveryAddress  string               `json:"delivery_address,omitempty"`
	DeliveryTimeSlot string               `json:"delivery_time_slot,omitempty"`
	PaymentMethod    string               `json:"payment_method"`
	IsWholesale      bool                 `json:"is_wholesale"`
	Notes            string               `json:"notes,omitempty"`
	UserID           uint64               `json:"user_id"`
}

// NewOrderRequest is everything an order needs except id, date and status.
type NewOrderRequest struct {
	Total            decimal.Decimal
	WholesaleTotal   decimal.Decimal
	Savings          decimal.Decimal
	Items            []OrderItem
	DeliveryDate     string
	DeliveryAddress  string
	DeliveryTimeSlot string
	PaymentMethod    string
	IsWholesale      bool
	Notes            string
	UserID           uint64
}

type UpdateOrderStatusRequest struct {
	Status constant.OrderStatus `json:"status" validate:"required"`
}

type PlaceOrderRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
	Notes           string `json:"notes"`
}

type PlaceOrderResponse struct {
	Order         *Order          `json:"order"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	AmountCharged decimal.Decimal `json:"amount_charged"`
}

type PaymentMethod struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Type          constant.PaymentType `json:"type"`
	Description   string               `json:"description"`
	Available     bool                 `json:"available"`
	ProcessingFee decimal.Decimal      `json:"processing_fee"`
}

type OrderListResponse struct {
	Items []Order `json:"items"`
}

package model

import "github.com/shopspring/decimal"

type CartItem struct {
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Reprice sets the unit price and recomputes the subtotal from the quantity.
func (c *CartItem) Reprice(unitPrice decimal.Decimal) {
	c.UnitPrice = unitPrice
	c.Subtotal = unitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

type DeliverySchedule struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	ZoneID   string `json:"zone_id,omitempty"`
	Address  string `json:"address"`
	Notes    string `json:"notes,omitempty"`
}

type CartSummary struct {
	TotalItems       int             `json:"total_items"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	WholesaleSavings decimal.Decimal `json:"wholesale_savings"`
	DeliveryFee      decimal.Decimal `json:"delivery_fee"`
	FinalTotal       decimal.Decimal `json:"final_total"`
}

type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

type CartResponse struct {
	Items            []CartItem        `json:"items"`
	IsWholesaleMode  bool              `json:"is_wholesale_mode"`
	DeliverySchedule *DeliverySchedule `json:"delivery_schedule,omitempty"`
	Summary          CartSummary       `json:"summary"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartMutationResponse reports whether a mutation changed the cart.
type CartMutationResponse struct {
	Changed bool         `json:"changed"`
	Cart    CartResponse `json:"cart"`
}

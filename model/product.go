package model

import "github.com/shopspring/decimal"

// Product is a catalog entry. The core never mutates it.
type Product struct {
	ID               string          `db:"id" json:"id"`
	Name             string          `db:"name" json:"name"`
	Brand            string          `db:"brand" json:"brand"`
	Category         string          `db:"category" json:"category"`
	Subcategory      string          `db:"subcategory" json:"subcategory"`
	Description      string          `db:"description" json:"description,omitempty"`
	Weight           string          `db:"weight" json:"weight"`
	Unit             string          `db:"unit" json:"unit"`
	Price            decimal.Decimal `db:"price" json:"price"`
	WholesalePrice   decimal.Decimal `db:"wholesale_price" json:"wholesale_price"`
	Stock            int             `db:"stock" json:"stock"`
	MinOrderQuantity int             `db:"min_order_quantity" json:"min_order_quantity"`
	MaxOrderQuantity int             `db:"max_order_quantity" json:"max_order_quantity"`
	IsAvailable      bool            `db:"is_available" json:"is_available"`
	IsWholesale      bool            `db:"is_wholesale" json:"is_wholesale"`
}

// PriceFor returns the unit price for the given pricing mode.
func (p Product) PriceFor(wholesale bool) decimal.Decimal {
	if wholesale {
		return p.WholesalePrice
	}
	return p.Price
}

type Category struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type ProductListResponse struct {
	Items      []ProductStockResponse `json:"items"`
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	PerPage    int                    `json:"per_page"`
}

// ProductStockResponse is a catalog entry joined with its live ledger value.
type ProductStockResponse struct {
	Product
	AvailableStock int `json:"available_stock"`
}

// UpdateStockRequest overwrites the ledger value of one product.
type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/snackstore/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.Product, int64, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	productColumns = `p.id, p.name, p.brand, p.category, p.subcategory, p.description, p.weight, p.unit,
p.price, p.wholesale_price, p.stock, p.min_order_quantity, p.max_order_quantity, p.is_available, p.is_wholesale`

	listProductsQuery   = `SELECT ` + productColumns + ` FROM product p ORDER BY p.category, p.id LIMIT ? OFFSET ?`
	countProductsQuery  = `SELECT COUNT(*) FROM product`
	listByCategoryQuery = `SELECT ` + productColumns + ` FROM product p WHERE p.category = ? ORDER BY p.id`
	listAllQuery        = `SELECT ` + productColumns + ` FROM product p ORDER BY p.id`
	getProductQuery     = `SELECT ` + productColumns + ` FROM product p WHERE p.id = ?`
	listCategoriesQuery = `SELECT id, name FROM product_category ORDER BY sort_order, id`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.Product, int64, error) {
	offset := (page - 1) * perPage

	items := make([]model.Product, 0, perPage)
	if err := s.conn.SelectContext(ctx, &items, listProductsQuery, perPage, offset); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	items := make([]model.Product, 0)
	if err := s.conn.SelectContext(ctx, &items, listByCategoryQuery, category); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListAll(ctx context.Context) ([]model.Product, error) {
	items := make([]model.Product, 0)
	if err := s.conn.SelectContext(ctx, &items, listAllQuery); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns (nil, nil) when the product does not exist.
func (s *SQL) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := s.conn.GetContext(ctx, &p, getProductQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) ListCategories(ctx context.Context) ([]model.Category, error) {
	items := make([]model.Category, 0)
	if err := s.conn.SelectContext(ctx, &items, listCategoriesQuery); err != nil {
		return nil, err
	}
	return items, nil
}

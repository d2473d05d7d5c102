package product

import (
	"context"

	"github.com/muhammadheryan/snackstore/application/stock"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	productRepo "github.com/muhammadheryan/snackstore/repository/product"
	"github.com/muhammadheryan/snackstore/utils/errors"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	ListByCategory(ctx context.Context, category string) ([]model.ProductStockResponse, error)
	GetProduct(ctx context.Context, id string) (*model.ProductStockResponse, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
	stockApp    stock.StockApp
}

func NewProductApp(productRepo productRepo.ProductRepository, stockApp stock.StockApp) ProductApp {
	return &productAppImpl{productRepo: productRepo, stockApp: stockApp}
}

func (s *productAppImpl) ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      s.withStock(items),
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) ListByCategory(ctx context.Context, category string) ([]model.ProductStockResponse, error) {
	items, err := s.productRepo.ListByCategory(ctx, category)
	if err != nil {
		logger.Error("[ListByCategory] error productRepo.ListByCategory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.withStock(items), nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id string) (*model.ProductStockResponse, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return &model.ProductStockResponse{
		Product:        *result,
		AvailableStock: s.stockApp.GetStock(result.ID),
	}, nil
}

func (s *productAppImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.productRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("[ListCategories] error productRepo.ListCategories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return categories, nil
}

func (s *productAppImpl) withStock(items []model.Product) []model.ProductStockResponse {
	out := make([]model.ProductStockResponse, 0, len(items))
	for _, p := range items {
		out = append(out, model.ProductStockResponse{Product: p, AvailableStock: s.stockApp.GetStock(p.ID)})
	}
	return out
}

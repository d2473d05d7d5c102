package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// ListProducts handler
// @Summary List products
// @Description Catalog page joined with the live stock ledger
// @Tags Catalog
// @Produce json
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.ProductApp.ListProducts(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.ProductStockResponse
// @Failure 400 {object} errors.CustomError
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.GetProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListCategories handler
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} model.Category
// @Router /categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListByCategory handler
// @Summary List products of a category
// @Tags Catalog
// @Produce json
// @Param category path string true "Category ID"
// @Success 200 {array} model.ProductStockResponse
// @Router /categories/{category}/products [get]
func (s *RestHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListByCategory(r.Context(), mux.Vars(r)["category"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

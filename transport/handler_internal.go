package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/snackstore/model"
)

// ListAllOrders handler
// @Summary List every order
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.OrderListResponse
// @Router /internal/orders [get]
func (s *RestHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.OrderListResponse{Items: s.OrderApp.ListOrders()})
}

// ClearOrders handler
// @Summary Wipe the order log
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200
// @Router /internal/orders [delete]
func (s *RestHandler) ClearOrders(w http.ResponseWriter, r *http.Request) {
	if err := s.OrderApp.ClearOrders(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// UpdateOrderStatus handler
// @Summary Move an order to a new status
// @Description Delivered sends the confirmation email, every status but cancelled notifies the merchant
// @Tags Internal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body model.UpdateOrderStatusRequest true "Status"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /internal/orders/{id}/status [put]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateOrderStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.UpdateOrderStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetStockLedger handler
// @Summary Stock ledger snapshot
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Router /internal/stock [get]
func (s *RestHandler) GetStockLedger(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.StockApp.Snapshot())
}

// UpdateStock handler
// @Summary Overwrite a product's stock
// @Tags Internal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body model.UpdateStockRequest true "Quantity"
// @Success 200 {object} model.ProductStockResponse
// @Router /internal/stock/{productId} [put]
func (s *RestHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["productId"]

	var req model.UpdateStockRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	product, err := s.ProductApp.GetProduct(ctx, productID)
	if err != nil {
		writeError(w, err)
		return
	}

	s.StockApp.UpdateStock(ctx, productID, req.Quantity)
	product.AvailableStock = s.StockApp.GetStock(productID)
	writeSuccess(w, product)
}

// ResetStock handler
// @Summary Reseed the ledger from the catalog
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Router /internal/stock/reset [post]
func (s *RestHandler) ResetStock(w http.ResponseWriter, r *http.Request) {
	if err := s.StockApp.Initialize(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.StockApp.Snapshot())
}

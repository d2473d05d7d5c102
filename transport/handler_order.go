package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	utilsContext "github.com/muhammadheryan/snackstore/utils/context"
	"github.com/muhammadheryan/snackstore/utils/errors"
)

// PaymentMethods handler
// @Summary List payment methods
// @Tags Checkout
// @Produce json
// @Success 200 {array} model.PaymentMethod
// @Router /payment-methods [get]
func (s *RestHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.CheckoutApp.PaymentMethods())
}

// PlaceOrder handler
// @Summary Checkout
// @Description Validates the cart, records the order and empties the cart. Payment is simulated.
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PlaceOrderRequest true "Payment"
// @Success 200 {object} model.PlaceOrderResponse
// @Failure 422 {object} errors.CustomError
// @Router /checkout [post]
func (s *RestHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.PlaceOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CheckoutApp.PlaceOrder(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListMyOrders handler
// @Summary Order history
// @Description Orders of the logged-in merchant, newest first
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.OrderListResponse
// @Router /orders [get]
func (s *RestHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	writeSuccess(w, model.OrderListResponse{Items: s.OrderApp.GetOrdersByUser(userID)})
}

// GetMyOrder handler
// @Summary Get order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.CustomError
// @Router /orders/{id} [get]
func (s *RestHandler) GetMyOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	o := s.OrderApp.GetOrderByID(mux.Vars(r)["id"])
	if o == nil || o.UserID != userID {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}
	writeSuccess(w, o)
}

// Dashboard handler
// @Summary Merchant dashboard
// @Description Purchase totals and most bought products
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardResponse
// @Router /dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.MetricsApp.GetDashboard(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

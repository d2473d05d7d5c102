package transport

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/snackstore/application/cart"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	utilsContext "github.com/muhammadheryan/snackstore/utils/context"
	"github.com/muhammadheryan/snackstore/utils/errors"
)

// merchantCart resolves the authenticated merchant's cart. When it returns
// false the error response has already been written.
func (s *RestHandler) merchantCart(w http.ResponseWriter, r *http.Request) (uint64, cart.CartApp, bool) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return 0, nil, false
	}
	c, err := s.Carts.Get(r.Context(), userID)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return 0, nil, false
	}
	return userID, c, true
}

// GetCart handler
// @Summary Get cart
// @Description Items, pricing mode, delivery schedule and summary
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	_, cartApp, ok := s.merchantCart(w, r)
	if !ok {
		return
	}
	writeSuccess(w, cartApp.Snapshot())
}

// AddToCart handler
// @Summary Add product to cart
// @Description Quantity is clamped to the product limits and reserved from the stock ledger
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AddToCartRequest true "Product and quantity"
// @Success 200 {object} model.CartMutationResponse
// @Failure 409 {object} errors.CustomError
// @Router /cart/items [post]
func (s *RestHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, cartApp, ok := s.merchantCart(w, r)
	if !ok {
		return
	}

	var req model.AddToCartRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	product, err := s.ProductApp.GetProduct(ctx, req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}

	if !cartApp.AddToCart(ctx, product.Product, req.Quantity) {
		writeError(w, errors.SetCustomErrorWithDetails(constant.ErrInsufficientStock,
			[]string{fmt.Sprintf(constant.CartInsufficientStock, product.Name)}))
		return
	}
	writeSuccess(w, model.CartMutationResponse{Changed: true, Cart: cartApp.Snapshot()})
}

// UpdateQuantity handler
// @Summary Set cart line quantity
// @Description Zero or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body model.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} model.CartMutationResponse
// @Failure 409 {object} errors.CustomError
// @Router /cart/items/{productId} [put]
func (s *RestHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := mux.Vars(r)["productId"]
	_, cartApp, ok := s.merchantCart(w, r)
	if !ok {
		return
	}

	var req model.UpdateQuantityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if !cartApp.IsInCart(productID) {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	changed := cartApp.UpdateQuantity(ctx, productID, req.Quantity)
	if !changed && req.Quantity > 0 && cartApp.IsInCart(productID) {
		// still below the target means the ledger refused the increase
		for _, it := range cartApp.Items() {
			if it.Product.ID == productID && it.Quantity < min(req.Quantity, it.Product.MaxOrderQuantity) {
				writeError(w, errors.SetCustomErrorWithDetails(constant.ErrInsufficientStock,
					[]string{fmt.Sprintf(constant.CartInsufficientStock, it.Product.Name)}))
				return
			}
		}
	}
	writeSuccess(w, model.CartMutationResponse{Changed: changed, Cart: cartApp.Snapshot()})
}

// RemoveFromCart handler
// @Summary Remove cart line
// @Description Held stock goes back to the ledger
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} model.CartResponse
// @Router /cart/items/{productId} [delete]
func (s *RestHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	_, cartApp, ok := s.merchantCart(w, r)
	if !ok {
		return
	}
	cartApp.RemoveFromCart(r.Context(), mux.Vars(r)["productId"])
	writeSuccess(w, cartApp.Snapshot())
}

// ClearCart handler
// @Summary Abandon cart
// @Description Empties the cart and releases every held line
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CartResponse
// @Router /cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	_, cartApp, ok := s.merchantCart(w, r)
	if !ok {
		return
	}
	cartApp.ClearCart(r.Context())
	writeSuccess(w, cartApp.Snapshot())
}

// ToggleWholesaleMode handler
// @Summary Toggle wholesale pricing
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CartResponse
// @Router /cart/wholesale-mode [post]
func (s *RestHandler) ToggleWholesaleMode(w http.ResponseWriter, r *http.Request) {
	_, cartApp, ok := s.merchantCart(w, r)
	if !ok {
		return
	}
	cartApp.ToggleWholesaleMode(r.Context())
	writeSuccess(w, cartApp.Snapshot())
}

// ValidateCart handler
// @Summary Validate cart for checkout
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ValidationResult
// @Router /cart/validation [get]
func (s *RestHandler) ValidateCart(w http.ResponseWriter, r *http.Request) {
	_, cartApp, ok := s.merchantCart(w, r)
	if !ok {
		return
	}
	writeSuccess(w, cartApp.ValidateOrder())
}

// ScheduleOptions handler
// @Summary Delivery schedule options
// @Description Bookable dates, time slots and zones
// @Tags Schedule
// @Produce json
// @Success 200 {object} model.ScheduleOptionsResponse
// @Router /schedule/options [get]
func (s *RestHandler) ScheduleOptions(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.SchedulerApp.Options())
}

// SetSchedule handler
// @Summary Schedule delivery
// @Description Runs every wizard step and stores the confirmed schedule on the cart
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ScheduleRequest true "Schedule"
// @Success 200 {object} model.DeliverySchedule
// @Failure 400 {object} errors.CustomError
// @Router /cart/schedule [put]
func (s *RestHandler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ScheduleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SchedulerApp.Schedule(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ClearSchedule handler
// @Summary Clear delivery schedule
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CartResponse
// @Router /cart/schedule [delete]
func (s *RestHandler) ClearSchedule(w http.ResponseWriter, r *http.Request) {
	userID, cartApp, ok := s.merchantCart(w, r)
	if !ok {
		return
	}
	if err := s.SchedulerApp.ClearSchedule(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, cartApp.Snapshot())
}

package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/snackstore/application/cart"
	"github.com/muhammadheryan/snackstore/application/checkout"
	appmetrics "github.com/muhammadheryan/snackstore/application/metrics"
	"github.com/muhammadheryan/snackstore/application/order"
	"github.com/muhammadheryan/snackstore/application/product"
	"github.com/muhammadheryan/snackstore/application/schedule"
	"github.com/muhammadheryan/snackstore/application/stock"
	userapp "github.com/muhammadheryan/snackstore/application/user"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	utilsContext "github.com/muhammadheryan/snackstore/utils/context"
	"github.com/muhammadheryan/snackstore/utils/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	ProductApp   product.ProductApp
	StockApp     stock.StockApp
	Carts        cart.Carts
	SchedulerApp schedule.SchedulerApp
	CheckoutApp  checkout.CheckoutApp
	OrderApp     order.OrderApp
	MetricsApp   appmetrics.MetricsApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	mux.HandleFunc("/categories/{category}/products", rh.ListByCategory).Methods(http.MethodGet)
	mux.HandleFunc("/payment-methods", rh.PaymentMethods).Methods(http.MethodGet)
	mux.HandleFunc("/schedule/options", rh.ScheduleOptions).Methods(http.MethodGet)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/profile", rh.GetProfile).Methods(http.MethodGet)
	mux.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPut)
	mux.HandleFunc("/profile/password", rh.ChangePassword).Methods(http.MethodPut)

	mux.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/cart", rh.ClearCart).Methods(http.MethodDelete)
	mux.HandleFunc("/cart/items", rh.AddToCart).Methods(http.MethodPost)
	mux.HandleFunc("/cart/items/{productId}", rh.UpdateQuantity).Methods(http.MethodPut)
	mux.HandleFunc("/cart/items/{productId}", rh.RemoveFromCart).Methods(http.MethodDelete)
	mux.HandleFunc("/cart/wholesale-mode", rh.ToggleWholesaleMode).Methods(http.MethodPost)
	mux.HandleFunc("/cart/validation", rh.ValidateCart).Methods(http.MethodGet)
	mux.HandleFunc("/cart/schedule", rh.SetSchedule).Methods(http.MethodPut)
	mux.HandleFunc("/cart/schedule", rh.ClearSchedule).Methods(http.MethodDelete)

	mux.HandleFunc("/checkout", rh.PlaceOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders", rh.ListMyOrders).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{id}", rh.GetMyOrder).Methods(http.MethodGet)
	mux.HandleFunc("/dashboard", rh.Dashboard).Methods(http.MethodGet)

	// back-office routes, static api key
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/orders", rh.ListAllOrders).Methods(http.MethodGet)
	internal.HandleFunc("/orders", rh.ClearOrders).Methods(http.MethodDelete)
	internal.HandleFunc("/orders/{id}/status", rh.UpdateOrderStatus).Methods(http.MethodPut)
	internal.HandleFunc("/stock", rh.GetStockLedger).Methods(http.MethodGet)
	internal.HandleFunc("/stock/reset", rh.ResetStock).Methods(http.MethodPost)
	internal.HandleFunc("/stock/{productId}", rh.UpdateStock).Methods(http.MethodPut)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// Register handler
// @Summary Register merchant
// @Description Register a new merchant account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login merchant
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Drop the session behind the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200
// @Failure 401 {object} errors.CustomError
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// GetProfile handler
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse
// @Router /profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update profile
// @Description Update name, phone or push device token. Empty fields are left unchanged.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile"
// @Success 200 {object} model.ProfileResponse
// @Failure 400 {object} errors.CustomError
// @Router /profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ChangePassword handler
// @Summary Change password
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangePasswordRequest true "Passwords"
// @Success 200
// @Failure 400 {object} errors.CustomError
// @Router /profile/password [put]
func (s *RestHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ChangePasswordRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.ChangePassword(r.Context(), userID, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

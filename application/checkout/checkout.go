package checkout

import (
	"context"
	"fmt"
	"slices"

	"github.com/muhammadheryan/snackstore/application/cart"
	appmetrics "github.com/muhammadheryan/snackstore/application/metrics"
	"github.com/muhammadheryan/snackstore/application/order"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	productrepo "github.com/muhammadheryan/snackstore/repository/product"
	"github.com/muhammadheryan/snackstore/thirdparty/notification"
	"github.com/muhammadheryan/snackstore/utils/errors"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"github.com/muhammadheryan/snackstore/utils/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// payment is mocked; every method settles immediately.
var paymentMethods = []model.PaymentMethod{
	{
		ID:            "card",
		Name:          "Tarjeta de Crédito/Débito",
		Type:          constant.PaymentTypeCard,
		Description:   "Visa, Mastercard, American Express",
		Available:     true,
		ProcessingFee: decimal.RequireFromString("0.035"),
	},
	{
		ID:            "transfer",
		Name:          "Transferencia Bancaria",
		Type:          constant.PaymentTypeTransfer,
		Description:   "Transferencia directa a cuenta",
		Available:     true,
		ProcessingFee: decimal.Zero,
	},
	{
		ID:            "credit",
		Name:          "Crédito Comercial",
		Type:          constant.PaymentTypeCredit,
		Description:   "Pago a 30 días para comerciantes registrados",
		Available:     true,
		ProcessingFee: decimal.Zero,
	},
	{
		ID:            "cash",
		Name:          "Efectivo contra Entrega",
		Type:          constant.PaymentTypeCash,
		Description:   "Pago en efectivo al recibir el pedido",
		Available:     true,
		ProcessingFee: decimal.Zero,
	},
}

type CheckoutApp interface {
	PaymentMethods() []model.PaymentMethod
	PlaceOrder(ctx context.Context, userID uint64, req *model.PlaceOrderRequest) (*model.PlaceOrderResponse, error)
}

type checkoutAppImpl struct {
	carts       cart.Carts
	orderApp    order.OrderApp
	metricsApp  appmetrics.MetricsApp
	productRepo productrepo.ProductRepository
	dispatcher  notification.Dispatcher
	metrics     *metrics.StoreMetrics
}

func NewCheckoutApp(carts cart.Carts, orderApp order.OrderApp, metricsApp appmetrics.MetricsApp, productRepo productrepo.ProductRepository, dispatcher notification.Dispatcher, m *metrics.StoreMetrics) CheckoutApp {
	return &checkoutAppImpl{
		carts:       carts,
		orderApp:    orderApp,
		metricsApp:  metricsApp,
		productRepo: productRepo,
		dispatcher:  dispatcher,
		metrics:     m,
	}
}

func (s *checkoutAppImpl) PaymentMethods() []model.PaymentMethod {
	return slices.Clone(paymentMethods)
}

// PlaceOrder turns the merchant's cart into an order. The stock the cart holds
// is consumed as is, the ledger is not reduced a second time.
func (s *checkoutAppImpl) PlaceOrder(ctx context.Context, userID uint64, req *model.PlaceOrderRequest) (*model.PlaceOrderResponse, error) {
	cartApp, err := s.carts.Get(ctx, userID)
	if err != nil {
		logger.Error("[PlaceOrder] err carts.Get", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	validation, snapshot := cartApp.CheckoutSnapshot()
	if !validation.IsValid {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrOrderValidation, validation.Errors)
	}

	method, ok := findPaymentMethod(req.PaymentMethodID)
	if !ok || !method.Available {
		return nil, errors.SetCustomError(constant.ErrInvalidPaymentMethod)
	}

	problems := make([]string, 0)
	for _, item := range snapshot.Items {
		product, err := s.productRepo.GetByID(ctx, item.Product.ID)
		if err != nil {
			logger.Error("[PlaceOrder] err productRepo.GetByID", zap.String("product_id", item.Product.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		switch {
		case product == nil:
			problems = append(problems, fmt.Sprintf(constant.CheckoutProductNotFound, item.Product.Name))
		case !product.IsAvailable:
			problems = append(problems, fmt.Sprintf(constant.ValidationUnavailable, item.Product.Name))
		case item.Quantity <= 0:
			problems = append(problems, fmt.Sprintf(constant.CheckoutNothingHeld, item.Product.Name))
		}
	}
	if len(problems) > 0 {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrOrderValidation, problems)
	}

	summary := snapshot.Summary
	newOrder := model.NewOrderRequest{
		Total:          summary.FinalTotal,
		WholesaleTotal: summary.TotalPrice,
		Savings:        summary.WholesaleSavings,
		Items:          toOrderItems(snapshot.Items),
		PaymentMethod:  method.Name,
		IsWholesale:    snapshot.IsWholesaleMode,
		Notes:          req.Notes,
		UserID:         userID,
	}
	if sc := snapshot.DeliverySchedule; sc != nil {
		newOrder.DeliveryDate = sc.Date
		newOrder.DeliveryAddress = sc.Address
		newOrder.DeliveryTimeSlot = sc.TimeSlot
		if newOrder.Notes == "" {
			newOrder.Notes = sc.Notes
		}
	}

	created, err := s.orderApp.AddOrder(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err := s.metricsApp.UpdateMetrics(ctx, userID, *created); err != nil {
		logger.Error("[PlaceOrder] err metricsApp.UpdateMetrics", zap.String("order_id", created.ID), zap.String("error", err.Error()))
		s.metrics.IncSideEffectFailure("metrics")
	}

	cartApp.ConsumeCart(ctx)

	fee := summary.FinalTotal.Mul(method.ProcessingFee).Round(2)
	charged := summary.FinalTotal.Add(fee)

	placed := model.Notification{
		Title: constant.OrderPlacedTitle,
		Body:  fmt.Sprintf(constant.OrderPlacedBody, created.ID, charged.StringFixed(2)),
		Data:  map[string]string{"order_id": created.ID},
	}
	if err := s.dispatcher.Show(ctx, userID, placed); err != nil {
		logger.Error("[PlaceOrder] err dispatcher.Show", zap.String("order_id", created.ID), zap.String("error", err.Error()))
		s.metrics.IncSideEffectFailure("notification")
	}

	return &model.PlaceOrderResponse{
		Order:         created,
		ProcessingFee: fee,
		AmountCharged: charged,
	}, nil
}

func findPaymentMethod(id string) (model.PaymentMethod, bool) {
	idx := slices.IndexFunc(paymentMethods, func(m model.PaymentMethod) bool { return m.ID == id })
	if idx < 0 {
		return model.PaymentMethod{}, false
	}
	return paymentMethods[idx], true
}

func toOrderItems(items []model.CartItem) []model.OrderItem {
	out := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.OrderItem{
			ID:        it.Product.ID,
			Name:      it.Product.Name,
			Brand:     it.Product.Brand,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
			Weight:    it.Product.Weight,
		})
	}
	return out
}

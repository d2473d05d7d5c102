package order

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/constant"
	"github.com/muhammadheryan/snackstore/model"
	orderrepo "github.com/muhammadheryan/snackstore/repository/order"
	"github.com/muhammadheryan/snackstore/thirdparty/mailer"
	"github.com/muhammadheryan/snackstore/thirdparty/notification"
	"github.com/muhammadheryan/snackstore/utils/errors"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"github.com/muhammadheryan/snackstore/utils/metrics"
	"go.uber.org/zap"
)

const (
	orderSuffixSpace = 1000
	randomIDAttempts = 10
)

// UserDirectory resolves the merchant behind an order.
type UserDirectory interface {
	GetUser(ctx context.Context, userID uint64) (*model.ProfileResponse, error)
}

type OrderApp interface {
	Load(ctx context.Context) error
	AddOrder(ctx context.Context, req model.NewOrderRequest) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status constant.OrderStatus) (*model.Order, error)
	GetOrdersByUser(userID uint64) []model.Order
	GetOrderByID(orderID string) *model.Order
	ListOrders() []model.Order
	ClearOrders(ctx context.Context) error
}

type orderAppImpl struct {
	mu     sync.Mutex
	orders []model.Order

	config     config.OrderConfig
	orderRepo  orderrepo.OrderRepository
	dispatcher notification.Dispatcher
	mailer     mailer.Mailer
	users      UserDirectory
	metrics    *metrics.StoreMetrics

	now    func() time.Time
	suffix func(n int) int
}

func NewOrderApp(cfg config.OrderConfig, orderRepo orderrepo.OrderRepository, dispatcher notification.Dispatcher, mailer mailer.Mailer, users UserDirectory, m *metrics.StoreMetrics) OrderApp {
	return &orderAppImpl{
		orders:     make([]model.Order, 0),
		config:     cfg,
		orderRepo:  orderRepo,
		dispatcher: dispatcher,
		mailer:     mailer,
		users:      users,
		metrics:    m,
		now:        time.Now,
		suffix:     rand.IntN,
	}
}

func (s *orderAppImpl) Load(ctx context.Context) error {
	orders, err := s.orderRepo.Load(ctx)
	if err != nil {
		logger.Error("[OrderLoad] err orderRepo.Load", zap.String("error", err.Error()))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	return nil
}

// AddOrder stamps id, date and pending status, then prepends the order so the
// log stays newest first.
func (s *orderAppImpl) AddOrder(ctx context.Context, req model.NewOrderRequest) (*model.Order, error) {
	now := s.now()

	s.mu.Lock()
	id, ok := s.nextIDLocked(now)
	if !ok {
		s.mu.Unlock()
		logger.Error("[AddOrder] order id space exhausted", zap.String("date", now.Format(time.DateOnly)))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	order := model.Order{
		ID:               id,
		Date:             now.Format(time.DateOnly),
		Status:           constant.OrderStatusPending,
		Total:            req.Total,
		WholesaleTotal:   req.WholesaleTotal,
		Savings:          req.Savings,
		Items:            slices.Clone(req.Items),
		DeliveryDate:     req.DeliveryDate,
		DeliveryAddress:  req.DeliveryAddress,
		DeliveryTimeSlot: req.DeliveryTimeSlot,
		PaymentMethod:    req.PaymentMethod,
		IsWholesale:      req.IsWholesale,
		Notes:            req.Notes,
		UserID:           req.UserID,
	}
	s.orders = append([]model.Order{order}, s.orders...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.metrics.IncOrderPlaced(order.IsWholesale)
	s.scheduleReminder(ctx, order)

	created := order
	return &created, nil
}

// nextIDLocked draws random suffixes first and falls back to a scan of the
// day's id space, so an id is only refused once all suffixes are taken.
func (s *orderAppImpl) nextIDLocked(now time.Time) (string, bool) {
	taken := func(id string) bool {
		return slices.ContainsFunc(s.orders, func(o model.Order) bool { return o.ID == id })
	}
	for range randomIDAttempts {
		id := formatOrderID(now, s.suffix(orderSuffixSpace))
		if !taken(id) {
			return id, true
		}
	}
	for n := range orderSuffixSpace {
		id := formatOrderID(now, n)
		if !taken(id) {
			return id, true
		}
	}
	return "", false
}

func formatOrderID(t time.Time, n int) string {
	return fmt.Sprintf("%s-%04d-%02d%02d-%03d", constant.OrderIDPrefix, t.Year(), int(t.Month()), t.Day(), n)
}

func (s *orderAppImpl) scheduleReminder(ctx context.Context, order model.Order) {
	if s.config.ReminderDelay <= 0 {
		return
	}
	n := statusNotification(order.ID, constant.OrderStatusPending)
	if _, err := s.dispatcher.Schedule(ctx, order.UserID, n, s.config.ReminderDelay); err != nil {
		logger.Error("[AddOrder] err dispatcher.Schedule", zap.String("order_id", order.ID), zap.String("error", err.Error()))
		s.metrics.IncSideEffectFailure("notification")
	}
}

// UpdateOrderStatus moves an order to status. Setting the current status again
// changes nothing. Notification and email failures are logged and never undo
// the status change.
func (s *orderAppImpl) UpdateOrderStatus(ctx context.Context, orderID string, status constant.OrderStatus) (*model.Order, error) {
	if !status.IsValid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	s.mu.Lock()
	idx := slices.IndexFunc(s.orders, func(o model.Order) bool { return o.ID == orderID })
	if idx < 0 {
		s.mu.Unlock()
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	current := s.orders[idx].Status
	if current == status {
		unchanged := s.orders[idx]
		s.mu.Unlock()
		return &unchanged, nil
	}
	if s.config.StrictTransitions && !slices.Contains(constant.OrderStatusTransitions[current], status) {
		s.mu.Unlock()
		logger.Info("[UpdateOrderStatus] transition rejected",
			zap.String("order_id", orderID),
			zap.String("from", string(current)),
			zap.String("to", string(status)))
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	s.orders[idx].Status = status
	updated := s.orders[idx]
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.metrics.IncStatusTransition(string(status))

	if status != constant.OrderStatusCancelled {
		if err := s.dispatcher.Show(ctx, updated.UserID, statusNotification(updated.ID, status)); err != nil {
			logger.Error("[UpdateOrderStatus] err dispatcher.Show", zap.String("order_id", orderID), zap.String("error", err.Error()))
			s.metrics.IncSideEffectFailure("notification")
		}
	}
	if status == constant.OrderStatusDelivered {
		s.sendDeliveredEmail(ctx, updated)
	}

	return &updated, nil
}

func (s *orderAppImpl) sendDeliveredEmail(ctx context.Context, order model.Order) {
	user, err := s.users.GetUser(ctx, order.UserID)
	if err != nil {
		logger.Error("[UpdateOrderStatus] err users.GetUser", zap.Uint64("user_id", order.UserID), zap.String("error", err.Error()))
		s.metrics.IncSideEffectFailure("user_directory")
		return
	}
	if user == nil || user.Email == "" {
		return
	}
	if err := s.mailer.SendOrderConfirmation(ctx, order, user.Email, user.Name); err != nil {
		logger.Error("[UpdateOrderStatus] err mailer.SendOrderConfirmation", zap.String("order_id", order.ID), zap.String("error", err.Error()))
		s.metrics.IncSideEffectFailure("email")
	}
}

func statusNotification(orderID string, status constant.OrderStatus) model.Notification {
	tmpl := constant.OrderStatusNotification[status]
	return model.Notification{
		Title: tmpl.Title,
		Body:  fmt.Sprintf(tmpl.Body, orderID),
		Data: map[string]string{
			"order_id": orderID,
			"status":   string(status),
		},
	}
}

func (s *orderAppImpl) GetOrdersByUser(userID uint64) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// GetOrderByID returns nil when no order has the id.
func (s *orderAppImpl) GetOrderByID(orderID string) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			found := o
			return &found
		}
	}
	return nil
}

func (s *orderAppImpl) ListOrders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.orders)
}

func (s *orderAppImpl) ClearOrders(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]model.Order, 0)
	if err := s.orderRepo.Clear(ctx); err != nil {
		logger.Error("[ClearOrders] err orderRepo.Clear", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *orderAppImpl) persistLocked(ctx context.Context) {
	if err := s.orderRepo.Save(ctx, slices.Clone(s.orders)); err != nil {
		logger.Error("[OrderPersist] err orderRepo.Save", zap.String("error", err.Error()))
	}
}

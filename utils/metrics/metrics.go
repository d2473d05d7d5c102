package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records cart and order activity. A nil *StoreMetrics is a no-op.
type StoreMetrics struct {
	cartMutations     *prometheus.CounterVec
	stockRejections   *prometheus.CounterVec
	ordersPlaced      *prometheus.CounterVec
	statusTransitions *prometheus.CounterVec
	sideEffectFailure *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	m := &StoreMetrics{
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Cart mutations that changed the cart.",
		}, []string{"operation"}),
		stockRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cart_stock_rejections_total",
			Help: "Cart mutations skipped because the ledger could not cover them.",
		}, []string{"operation"}),
		ordersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Orders created at checkout.",
		}, []string{"mode"}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "order_status_transitions_total",
			Help: "Order status changes by target status.",
		}, []string{"status"}),
		sideEffectFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "order_side_effect_failures_total",
			Help: "Swallowed failures of notification, email and metrics collaborators.",
		}, []string{"collaborator"}),
	}
	reg.MustRegister(m.cartMutations, m.stockRejections, m.ordersPlaced, m.statusTransitions, m.sideEffectFailure)
	return m
}

func (m *StoreMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

func (m *StoreMetrics) IncStockRejection(op string) {
	if m == nil || m.stockRejections == nil {
		return
	}
	m.stockRejections.WithLabelValues(normalizeLabel(op)).Inc()
}

func (m *StoreMetrics) IncOrderPlaced(wholesale bool) {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	mode := "retail"
	if wholesale {
		mode = "wholesale"
	}
	m.ordersPlaced.WithLabelValues(mode).Inc()
}

func (m *StoreMetrics) IncStatusTransition(status string) {
	if m == nil || m.statusTransitions == nil {
		return
	}
	m.statusTransitions.WithLabelValues(normalizeLabel(status)).Inc()
}

func (m *StoreMetrics) IncSideEffectFailure(collaborator string) {
	if m == nil || m.sideEffectFailure == nil {
		return
	}
	m.sideEffectFailure.WithLabelValues(normalizeLabel(collaborator)).Inc()
}

func normalizeLabel(v string) string {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" {
		return "unknown"
	}
	return v
}

package constant

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderIDPrefix is the leading segment of every generated order id (FL-YYYY-MMDD-NNN).
const OrderIDPrefix = "FL"

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is expected from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderStatusTransitions lists the moves allowed when strict transitions are enabled.
var OrderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
}

type StatusNotification struct {
	Title string
	Body  string
}

// OrderStatusNotification holds the message sent to the merchant for each status.
var OrderStatusNotification = map[OrderStatus]StatusNotification{
	OrderStatusPending:   {Title: "Pedido recibido", Body: "Tu pedido %s fue registrado y está pendiente de confirmación."},
	OrderStatusConfirmed: {Title: "Pedido confirmado", Body: "Tu pedido %s ha sido confirmado."},
	OrderStatusPreparing: {Title: "Preparando tu pedido", Body: "Estamos preparando tu pedido %s."},
	OrderStatusShipped:   {Title: "Pedido en camino", Body: "Tu pedido %s está en camino."},
	OrderStatusDelivered: {Title: "Pedido entregado", Body: "Tu pedido %s ha sido entregado. ¡Gracias por tu compra!"},
	OrderStatusCancelled: {Title: "Pedido cancelado", Body: "Tu pedido %s ha sido cancelado."},
}

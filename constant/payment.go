package constant

type PaymentType string

const (
	PaymentTypeCard     PaymentType = "card"
	PaymentTypeTransfer PaymentType = "transfer"
	PaymentTypeCredit   PaymentType = "credit"
	PaymentTypeCash     PaymentType = "cash"
)

const (
	OrderPlacedTitle = "¡Pago Exitoso!"
	OrderPlacedBody  = "Tu pedido %s ha sido procesado exitosamente. Total: S/ %s"
)

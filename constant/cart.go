package constant

// snapshot keys in the key-value store, joined to the configured prefix
const (
	StorageKeyCart             = "cart"
	StorageKeyWholesaleMode    = "wholesaleMode"
	StorageKeyDeliverySchedule = "deliverySchedule"
	StorageKeyProductStock     = "productStock"
	StorageKeyOrders           = "orders"
	StorageKeyCancelledNotif   = "notification:cancelled"
)

const (
	ValidationEmptyCart       = "El carrito está vacío"
	ValidationMinQuantity     = "%s: cantidad mínima es %d"
	ValidationMaxQuantity     = "%s: cantidad máxima es %d"
	ValidationUnavailable     = "%s: producto no disponible"
	ValidationMissingSchedule = "Debe programar una entrega para pedidos mayoristas"
	CheckoutProductNotFound   = "%s: producto ya no existe en el catálogo"
	CheckoutNothingHeld       = "%s: no hay stock reservado"
	CartInsufficientStock     = "%s: stock insuficiente"
)

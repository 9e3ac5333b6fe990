package entity

// DocStatus ciclo de vida de un documento del ERP.
type DocStatus int

const (
	DocStatusDraft     DocStatus = 0 // borrador
	DocStatusSubmitted DocStatus = 1 // validado
	DocStatusCancelled DocStatus = 2 // anulado
)

// Estados de pedidos y cotizaciones que ya no comprometen existencias.
const (
	StatusCompleted = "Completed"
	StatusClosed    = "Closed"
	StatusCancelled = "Cancelled"
	StatusLost      = "Lost"
	StatusOrdered   = "Ordered"
	StatusExpired   = "Expired"
)

// TerminalStatuses lista los estados terminales de pedidos de venta y cotizaciones.
func TerminalStatuses() []string {
	return []string{StatusCompleted, StatusClosed, StatusCancelled, StatusLost, StatusOrdered, StatusExpired}
}

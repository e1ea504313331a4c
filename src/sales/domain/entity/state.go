package entity

// SaleStatus representa el estado de una venta.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "PENDING"
	SaleStatusPaid      SaleStatus = "PAID"
	SaleStatusCancelled SaleStatus = "CANCELLED"
)

// saleEvent es un evento del ciclo de vida de la venta.
type saleEvent string

const (
	eventFinalize saleEvent = "finalize"
	eventCancel   saleEvent = "cancel"
)

// saleTransitions es la tabla de transiciones legales. PAID y CANCELLED
// son terminales: no aparecen como origen.
var saleTransitions = map[SaleStatus]map[saleEvent]SaleStatus{
	SaleStatusPending: {
		eventFinalize: SaleStatusPaid,
		eventCancel:   SaleStatusCancelled,
	},
}

// nextStatus valida y aplica un evento sobre el estado actual.
func nextStatus(current SaleStatus, event saleEvent) (SaleStatus, error) {
	if to, ok := saleTransitions[current][event]; ok {
		return to, nil
	}
	return current, ErrSaleNotPending
}

// Terminal indica si el estado ya no admite transiciones.
func (s SaleStatus) Terminal() bool {
	return len(saleTransitions[s]) == 0
}

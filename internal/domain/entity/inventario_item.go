package entity

import "time"

// InventarioItem representa un bien registrado en inventario. Referencia
// exactamente uno de ProductoID o PiezaID, nunca ambos. El alcance de tenant
// se hereda en dos saltos: item → producto|pieza → fabricante.
type InventarioItem struct {
	ID          string
	OwnerUserID string
	ProductoID  string // exactamente uno de ProductoID/PiezaID es no vacío
	PiezaID     string
	Serial      string
	Cantidad    int
	FechaCompra time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReferenciaValida verifica el invariante "exactamente una referencia".
func (i *InventarioItem) ReferenciaValida() bool {
	if i == nil {
		return false
	}
	return (i.ProductoID != "") != (i.PiezaID != "")
}

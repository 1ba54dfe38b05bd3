package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pieza representa un repuesto o pieza de recambio de un fabricante.
type Pieza struct {
	ID           string
	OwnerUserID  string
	FabricanteID string // opcional; "" = sin fabricante
	Codigo       string
	Nombre       string
	Descripcion  string
	Precio       decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

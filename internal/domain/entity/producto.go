package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto comercializado bajo una marca.
type Producto struct {
	ID            string
	OwnerUserID   string
	FabricanteID  string // opcional; "" = sin fabricante
	MarcaID       string
	Nombre        string
	Modelo        string
	SKU           string // código único por fabricante
	Descripcion   string
	Precio        decimal.Decimal
	MesesGarantia int // duración de la garantía de fábrica
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

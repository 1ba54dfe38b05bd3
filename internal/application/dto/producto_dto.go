package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre        string          `json:"nombre" validate:"required,min=1,max=200"`
	Modelo        string          `json:"modelo" validate:"omitempty,max=100"`
	SKU           string          `json:"sku" validate:"required,min=1,max=64"`
	Descripcion   string          `json:"descripcion" validate:"omitempty,max=2000"`
	MarcaID       string          `json:"marca_id" validate:"required,uuid"`
	FabricanteID  string          `json:"fabricante_id" validate:"omitempty,uuid"`
	Precio        decimal.Decimal `json:"precio"`
	MesesGarantia int             `json:"meses_garantia" validate:"min=0,max=120"`
}

// UpdateProductoRequest campos mutables de un producto.
type UpdateProductoRequest struct {
	Nombre        *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Modelo        *string          `json:"modelo" validate:"omitempty,max=100"`
	Descripcion   *string          `json:"descripcion" validate:"omitempty,max=2000"`
	Precio        *decimal.Decimal `json:"precio"`
	MesesGarantia *int             `json:"meses_garantia" validate:"omitempty,min=0,max=120"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID            string          `json:"id"`
	OwnerUserID   string          `json:"owner_user_id"`
	FabricanteID  string          `json:"fabricante_id,omitempty"`
	MarcaID       string          `json:"marca_id"`
	Nombre        string          `json:"nombre"`
	Modelo        string          `json:"modelo,omitempty"`
	SKU           string          `json:"sku"`
	Descripcion   string          `json:"descripcion,omitempty"`
	Precio        decimal.Decimal `json:"precio"`
	MesesGarantia int             `json:"meses_garantia"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductoListResponse listado paginado de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

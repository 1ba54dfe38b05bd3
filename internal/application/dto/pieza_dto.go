package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePiezaRequest entrada para crear una pieza de recambio.
type CreatePiezaRequest struct {
	Codigo       string          `json:"codigo" validate:"required,min=1,max=64"`
	Nombre       string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion  string          `json:"descripcion" validate:"omitempty,max=2000"`
	FabricanteID string          `json:"fabricante_id" validate:"omitempty,uuid"`
	Precio       decimal.Decimal `json:"precio"`
}

// UpdatePiezaRequest campos mutables de una pieza.
type UpdatePiezaRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string          `json:"descripcion" validate:"omitempty,max=2000"`
	Precio      *decimal.Decimal `json:"precio"`
}

// PiezaResponse salida de una pieza.
type PiezaResponse struct {
	ID           string          `json:"id"`
	OwnerUserID  string          `json:"owner_user_id"`
	FabricanteID string          `json:"fabricante_id,omitempty"`
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion,omitempty"`
	Precio       decimal.Decimal `json:"precio"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PiezaListResponse listado paginado de piezas.
type PiezaListResponse struct {
	Items []PiezaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

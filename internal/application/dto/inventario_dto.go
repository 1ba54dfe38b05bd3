package dto

import "time"

// CreateInventarioRequest entrada para registrar un bien. Exactamente uno de
// ProductoID/PiezaID debe venir, nunca ambos.
type CreateInventarioRequest struct {
	ProductoID  string    `json:"producto_id" validate:"omitempty,uuid"`
	PiezaID     string    `json:"pieza_id" validate:"omitempty,uuid"`
	Serial      string    `json:"serial" validate:"omitempty,max=100"`
	Cantidad    int       `json:"cantidad" validate:"min=1"`
	FechaCompra time.Time `json:"fecha_compra"`
}

// UpdateInventarioRequest campos mutables de un bien. La referencia a
// producto/pieza es inmutable tras el alta.
type UpdateInventarioRequest struct {
	Serial      *string    `json:"serial" validate:"omitempty,max=100"`
	Cantidad    *int       `json:"cantidad" validate:"omitempty,min=1"`
	FechaCompra *time.Time `json:"fecha_compra"`
}

// InventarioResponse salida de un bien del inventario.
type InventarioResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	ProductoID  string    `json:"producto_id,omitempty"`
	PiezaID     string    `json:"pieza_id,omitempty"`
	Serial      string    `json:"serial,omitempty"`
	Cantidad    int       `json:"cantidad"`
	FechaCompra time.Time `json:"fecha_compra"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventarioListResponse listado paginado de bienes.
type InventarioListResponse struct {
	Items []InventarioResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

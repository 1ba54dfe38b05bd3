package dto

import "time"

// CreateGarantiaRequest entrada para presentar un reclamo de garantía sobre un
// bien del inventario del solicitante.
type CreateGarantiaRequest struct {
	InventarioItemID string `json:"inventario_item_id" validate:"required,uuid"`
	Descripcion      string `json:"descripcion" validate:"required,min=1,max=2000"`
}

// CambiarEstadoGarantiaRequest transición de estado del reclamo.
type CambiarEstadoGarantiaRequest struct {
	Estado string `json:"estado" validate:"required,oneof=en_revision aprobada rechazada cerrada"`
}

// GarantiaResponse salida de una garantía.
type GarantiaResponse struct {
	ID               string     `json:"id"`
	OwnerUserID      string     `json:"owner_user_id"`
	FabricanteID     string     `json:"fabricante_id,omitempty"`
	InventarioItemID string     `json:"inventario_item_id"`
	Descripcion      string     `json:"descripcion"`
	Estado           string     `json:"estado"`
	FechaSolicitud   time.Time  `json:"fecha_solicitud"`
	FechaResolucion  *time.Time `json:"fecha_resolucion,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// GarantiaListResponse listado paginado de garantías.
type GarantiaListResponse struct {
	Items []GarantiaResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

package dto

import "time"

// CreateFabricanteRequest entrada para crear un fabricante. ApoderadoID solo
// lo puede fijar un admin; un apoderado creándose su propio fabricante queda
// como representante legal de forma implícita.
type CreateFabricanteRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	NIT         string `json:"nit" validate:"omitempty,max=20"`
	ApoderadoID string `json:"apoderado_id" validate:"omitempty,uuid"`
}

// UpdateFabricanteRequest campos mutables. ApoderadoID solo mutable por admin.
type UpdateFabricanteRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	NIT         *string `json:"nit" validate:"omitempty,max=20"`
	Estado      *string `json:"estado" validate:"omitempty,oneof=habilitado suspendido"`
	ApoderadoID *string `json:"apoderado_id" validate:"omitempty,uuid"`
}

// DelegadoRequest alta/baja de un administrador delegado.
type DelegadoRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// FabricanteResponse salida de un fabricante.
type FabricanteResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	NIT         string    `json:"nit"`
	ApoderadoID string    `json:"apoderado_id"`
	Delegados   []string  `json:"delegados"`
	Estado      string    `json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FabricanteListResponse listado paginado de fabricantes.
type FabricanteListResponse struct {
	Items []FabricanteResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

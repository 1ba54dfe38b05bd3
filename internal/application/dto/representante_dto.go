package dto

import "time"

// CreateRepresentanteRequest entrada para crear un representante comercial.
// Cada marca asociada debe ser alcanzable por el creador.
type CreateRepresentanteRequest struct {
	Nombre   string   `json:"nombre" validate:"required,min=1,max=200"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Telefono string   `json:"telefono" validate:"omitempty,max=30"`
	MarcaIDs []string `json:"marca_ids" validate:"omitempty,dive,uuid"`
}

// UpdateRepresentanteRequest campos mutables de un representante.
type UpdateRepresentanteRequest struct {
	Nombre   *string  `json:"nombre" validate:"omitempty,min=1,max=200"`
	Email    *string  `json:"email" validate:"omitempty,email"`
	Telefono *string  `json:"telefono" validate:"omitempty,max=30"`
	MarcaIDs []string `json:"marca_ids" validate:"omitempty,dive,uuid"`
}

// RepresentanteResponse salida de un representante.
type RepresentanteResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Nombre      string    `json:"nombre"`
	Email       string    `json:"email,omitempty"`
	Telefono    string    `json:"telefono,omitempty"`
	MarcaIDs    []string  `json:"marca_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RepresentanteListResponse listado paginado de representantes.
type RepresentanteListResponse struct {
	Items []RepresentanteResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

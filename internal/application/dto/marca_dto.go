package dto

import "time"

// CreateMarcaRequest entrada para crear una marca. FabricanteID es opcional;
// si viene, debe estar en el alcance de tenant del creador.
type CreateMarcaRequest struct {
	Nombre       string `json:"nombre" validate:"required,min=1,max=200"`
	FabricanteID string `json:"fabricante_id" validate:"omitempty,uuid"`
	LogoURL      string `json:"logo_url" validate:"omitempty,url,max=500"`
}

// UpdateMarcaRequest campos mutables de una marca.
type UpdateMarcaRequest struct {
	Nombre  *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	LogoURL *string `json:"logo_url" validate:"omitempty,url,max=500"`
}

// MarcaResponse salida de una marca.
type MarcaResponse struct {
	ID           string    `json:"id"`
	OwnerUserID  string    `json:"owner_user_id"`
	FabricanteID string    `json:"fabricante_id,omitempty"`
	Nombre       string    `json:"nombre"`
	LogoURL      string    `json:"logo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MarcaListResponse listado paginado de marcas.
type MarcaListResponse struct {
	Items []MarcaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

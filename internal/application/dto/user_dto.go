package dto

import "time"

// RegisterRequest entrada del registro público. El flujo público asigna
// siempre el conjunto de roles {usuario_bienes}; no acepta roles del cliente.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre" validate:"omitempty,max=200"`
}

// CreateUserRequest entrada para crear un usuario (flujo admin; password en
// texto, se hashea en el use case).
type CreateUserRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Nombre   string   `json:"nombre" validate:"required,min=1,max=200"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,oneof=admin apoderado usuario_bienes"`
}

// UpdateUserRequest campos mutables de un usuario (flujo admin).
type UpdateUserRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Estado *string `json:"estado" validate:"omitempty,oneof=active inactive suspended"`
}

// UpdateRolesRequest reemplaza el conjunto de roles (flujo admin).
type UpdateRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,oneof=admin apoderado usuario_bienes"`
}

// UserResponse salida de un usuario (sin password). RolPrincipal es la
// proyección legacy para consumidores de un solo rol (solo etiquetas de UI).
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Nombre       string    `json:"nombre"`
	Roles        []string  `json:"roles"`
	RolPrincipal string    `json:"rol_principal"`
	Estado       string    `json:"estado"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

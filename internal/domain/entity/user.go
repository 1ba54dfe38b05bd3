package entity

import (
	"time"

	"github.com/postventa/garantias-api/internal/domain/role"
)

// User representa un usuario del sistema. Roles es un conjunto no vacío
// (multi-rol); el registro público asigna siempre {usuario_bienes} y solo un
// admin puede mutar el conjunto después.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Roles        role.Set
	Estado       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RolSet implementa role.Carrier; tolera el receptor nil.
func (u *User) RolSet() role.Set {
	if u == nil {
		return role.Set{}
	}
	return u.Roles
}

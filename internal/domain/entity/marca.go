package entity

import "time"

// Marca representa una marca comercial. FabricanteID vacío significa marca sin
// fabricante asociado: solo su dueño la alcanza.
type Marca struct {
	ID           string
	OwnerUserID  string // usuario que la creó
	FabricanteID string // opcional; "" = sin fabricante
	Nombre       string
	LogoURL      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

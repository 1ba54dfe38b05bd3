package entity

import "time"

// Representante representa un representante comercial o de servicio externo,
// asociado a una o más marcas. No confundir con el representante legal
// (apoderado) de un Fabricante: este es una entidad de negocio.
// El alcance de tenant se hereda en dos saltos: representante → marcas
// representadas → fabricante.
type Representante struct {
	ID          string
	OwnerUserID string
	Nombre      string
	Email       string
	Telefono    string
	MarcaIDs    []string // marcas que representa
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Representa indica si el representante tiene asociada la marca indicada.
func (r *Representante) Representa(marcaID string) bool {
	if r == nil {
		return false
	}
	for _, id := range r.MarcaIDs {
		if id == marcaID {
			return true
		}
	}
	return false
}

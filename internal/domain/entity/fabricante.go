package entity

import "time"

// Estados de un fabricante.
const (
	FabricanteHabilitado = "habilitado"
	FabricanteSuspendido = "suspendido"
)

// Fabricante representa un fabricante: la unidad de aislamiento multi-tenant.
// ApoderadoID es el representante legal (dueño); Delegados son administradores
// delegados con el mismo acceso operativo sin ser dueños. La delegación es una
// relación a nivel de Fabricante, independiente de los roles del delegado.
type Fabricante struct {
	ID          string
	Nombre      string
	NIT         string
	ApoderadoID string   // representante legal; inmutable salvo por un admin
	Delegados   []string // IDs de usuarios administradores delegados
	Estado      string   // habilitado, suspendido
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EsApoderado indica si userID es el representante legal.
func (f *Fabricante) EsApoderado(userID string) bool {
	return f != nil && userID != "" && f.ApoderadoID == userID
}

// EsDelegado indica si userID está en el conjunto de delegados.
func (f *Fabricante) EsDelegado(userID string) bool {
	if f == nil || userID == "" {
		return false
	}
	for _, d := range f.Delegados {
		if d == userID {
			return true
		}
	}
	return false
}

// EnAlcanceDe indica si userID puede actuar sobre este fabricante
// (representante legal o delegado).
func (f *Fabricante) EnAlcanceDe(userID string) bool {
	return f.EsApoderado(userID) || f.EsDelegado(userID)
}

package entity

import "time"

// Estados de una garantía (reclamo).
const (
	GarantiaSolicitada = "solicitada"
	GarantiaEnRevision = "en_revision"
	GarantiaAprobada   = "aprobada"
	GarantiaRechazada  = "rechazada"
	GarantiaCerrada    = "cerrada"
)

// transicionesGarantia define el grafo de estados permitido.
var transicionesGarantia = map[string][]string{
	GarantiaSolicitada: {GarantiaEnRevision, GarantiaRechazada},
	GarantiaEnRevision: {GarantiaAprobada, GarantiaRechazada},
	GarantiaAprobada:   {GarantiaCerrada},
	GarantiaRechazada:  {GarantiaCerrada},
}

// Garantia representa un reclamo de garantía sobre un bien del inventario.
// FabricanteID puede quedar vacío cuando el bien no tiene fabricante asociado;
// en ese caso solo el dueño alcanza la garantía.
type Garantia struct {
	ID               string
	OwnerUserID      string // usuario que presenta el reclamo
	FabricanteID     string // derivado del producto/pieza del bien; "" = sin fabricante
	InventarioItemID string
	Descripcion      string // descripción del defecto reclamado
	Estado           string
	FechaSolicitud   time.Time
	FechaResolucion  *time.Time // nil mientras no esté aprobada/rechazada
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TransicionValida indica si la garantía puede pasar de su estado actual a destino.
func (g *Garantia) TransicionValida(destino string) bool {
	if g == nil {
		return false
	}
	for _, s := range transicionesGarantia[g.Estado] {
		if s == destino {
			return true
		}
	}
	return false
}

// Resuelta indica si la garantía alcanzó un estado terminal de decisión.
func (g *Garantia) Resuelta() bool {
	return g != nil && (g.Estado == GarantiaAprobada || g.Estado == GarantiaRechazada || g.Estado == GarantiaCerrada)
}

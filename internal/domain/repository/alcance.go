package repository

// Alcance describe el filtro de visibilidad de un listado: recursos cuyo
// dueño es el usuario, o que pertenecen a alguno de los fabricantes del
// alcance de tenant del usuario. Los repositorios lo traducen a
// (owner_user_id = $1 OR fabricante_id = ANY($2)).
type Alcance struct {
	OwnerUserID   string
	FabricanteIDs []string
}

// AlcanceInventario es el alcance de dos saltos para inventario: además de los
// bienes propios, los que referencian productos o piezas ya accesibles.
type AlcanceInventario struct {
	OwnerUserID string
	ProductoIDs []string
	PiezaIDs    []string
}

// AlcanceRepresentante es el alcance de dos saltos para representantes:
// además de los propios, los que representan alguna marca ya accesible.
type AlcanceRepresentante struct {
	OwnerUserID string
	MarcaIDs    []string
}

// Busqueda acota un listado ya filtrado por alcance. Siempre se combina con
// AND sobre el filtro de acceso: puede estrechar lo visible, nunca ampliarlo.
type Busqueda struct {
	Texto  string // búsqueda por texto (normalizada sin tildes)
	Estado string // filtro de estado, si aplica al recurso
	Limit  int
	Offset int
}

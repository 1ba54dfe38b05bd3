package authz

import "github.com/postventa/garantias-api/internal/domain/role"

// Claims es la identidad decodificada de la petición, pasada explícitamente
// por la cadena de llamadas (nunca leída de estado ambiente). La capa de
// identidad ya la autenticó; aquí se confía en ella tal cual.
type Claims struct {
	UserID string
	Roles  role.Set
}

// EsAdmin indica si el llamador porta el rol admin.
func (c Claims) EsAdmin() bool {
	return c.Roles.Has(role.Admin)
}

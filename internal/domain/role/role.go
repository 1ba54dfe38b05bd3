// Package role define el conjunto cerrado de roles del sistema y los
// predicados sobre conjuntos de roles. Un usuario tiene un conjunto de roles
// (multi-rol); el campo escalar `role` de versiones anteriores quedó
// reemplazado por este tipo.
package role

// Role es una etiqueta de rol del conjunto cerrado del sistema.
type Role string

// Roles válidos.
const (
	Admin         Role = "admin"
	Apoderado     Role = "apoderado"
	UsuarioBienes Role = "usuario_bienes"
)

// prioridad para la proyección Primary: admin > apoderado > usuario_bienes.
var prioridad = []Role{Admin, Apoderado, UsuarioBienes}

// Conocido indica si r pertenece al conjunto cerrado de roles.
func Conocido(r Role) bool {
	return r == Admin || r == Apoderado || r == UsuarioBienes
}

// Set es un conjunto de roles. Un Set nil se comporta como conjunto vacío:
// ningún método entra en pánico con el receptor nil.
type Set []Role

// Has devuelve true si target pertenece al conjunto.
func (s Set) Has(target Role) bool {
	for _, r := range s {
		if r == target {
			return true
		}
	}
	return false
}

// HasAny devuelve true si la intersección con targets no es vacía.
func (s Set) HasAny(targets ...Role) bool {
	for _, t := range targets {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// HasAll devuelve true si todos los targets pertenecen al conjunto.
// Con targets vacío es verdadero por vacuidad.
func (s Set) HasAll(targets ...Role) bool {
	for _, t := range targets {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

// Primary proyecta el conjunto a un único rol para consumidores legacy que
// esperan un escalar (etiquetas de UI, principalmente). Orden de prioridad:
// admin > apoderado > usuario_bienes; conjunto vacío cae en Apoderado.
//
// Es un shim de compatibilidad, NO una decisión de seguridad: nunca debe
// usarse para conceder acceso.
func (s Set) Primary() Role {
	for _, r := range prioridad {
		if s.Has(r) {
			return r
		}
	}
	return Apoderado
}

// Valida devuelve true si el conjunto no es vacío y todos sus roles son
// conocidos (invariante de User tras la migración multi-rol).
func (s Set) Valida() bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !Conocido(r) {
			return false
		}
	}
	return true
}

// Strings devuelve los roles como []string (persistencia y claims JWT).
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// FromStrings construye un Set desde []string (claims JWT, columnas text[]).
// No valida contra el conjunto cerrado; usar Valida() cuando importe.
func FromStrings(ss []string) Set {
	if len(ss) == 0 {
		return Set{}
	}
	out := make(Set, 0, len(ss))
	for _, s := range ss {
		out = append(out, Role(s))
	}
	return out
}

// Carrier es cualquier valor que exponga su conjunto de roles (p.ej. entity.User).
type Carrier interface {
	RolSet() Set
}

// Of normaliza defensivamente la entrada a un Set: acepta Set, []Role,
// []string, string suelto o un Carrier. Cualquier otra cosa (incluido nil)
// normaliza a conjunto vacío, nunca a pánico.
func Of(v any) Set {
	switch x := v.(type) {
	case Set:
		return x
	case []Role:
		return Set(x)
	case []string:
		return FromStrings(x)
	case string:
		return Set{Role(x)}
	case Role:
		return Set{x}
	case Carrier:
		if x == nil {
			return Set{}
		}
		return x.RolSet()
	default:
		return Set{}
	}
}

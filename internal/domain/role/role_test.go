package role_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/postventa/garantias-api/internal/domain/entity"
	"github.com/postventa/garantias-api/internal/domain/role"
)

// ──────────────────────────────────────────────────────────────────────────────
// Predicados de conjunto
// ──────────────────────────────────────────────────────────────────────────────

func TestSet_Has(t *testing.T) {
	s := role.Set{role.Admin, role.UsuarioBienes}

	assert.True(t, s.Has(role.Admin))
	assert.True(t, s.Has(role.UsuarioBienes))
	assert.False(t, s.Has(role.Apoderado))
}

func TestSet_HasAny(t *testing.T) {
	s := role.Set{role.Apoderado}

	assert.True(t, s.HasAny(role.Admin, role.Apoderado))
	assert.False(t, s.HasAny(role.Admin, role.UsuarioBienes))
	assert.False(t, s.HasAny(), "sin targets no hay intersección posible")
}

func TestSet_HasAll(t *testing.T) {
	s := role.Set{role.Admin, role.Apoderado}

	assert.True(t, s.HasAll(role.Admin))
	assert.True(t, s.HasAll(role.Admin, role.Apoderado))
	assert.False(t, s.HasAll(role.Admin, role.UsuarioBienes))
	assert.True(t, s.HasAll(), "con targets vacío es verdadero por vacuidad")
}

func TestSet_NilSeComportaComoVacio(t *testing.T) {
	var s role.Set

	assert.False(t, s.Has(role.Admin))
	assert.False(t, s.HasAny(role.Admin, role.Apoderado, role.UsuarioBienes))
	assert.True(t, s.HasAll())
	assert.False(t, s.Valida())
}

func TestSet_Valida(t *testing.T) {
	assert.True(t, role.Set{role.UsuarioBienes}.Valida())
	assert.True(t, role.Set{role.Admin, role.Apoderado, role.UsuarioBienes}.Valida())
	assert.False(t, role.Set{}.Valida(), "el conjunto de un usuario nunca puede ser vacío")
	assert.False(t, role.Set{role.Admin, "bodeguero"}.Valida(), "rol fuera del conjunto cerrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Proyección Primary (shim legacy, solo etiquetas de UI)
// ──────────────────────────────────────────────────────────────────────────────

func TestSet_Primary_OrdenDePrioridad(t *testing.T) {
	casos := []struct {
		nombre string
		set    role.Set
		quiere role.Role
	}{
		{"admin gana siempre", role.Set{role.UsuarioBienes, role.Admin, role.Apoderado}, role.Admin},
		{"apoderado sobre usuario_bienes", role.Set{role.UsuarioBienes, role.Apoderado}, role.Apoderado},
		{"rol único", role.Set{role.UsuarioBienes}, role.UsuarioBienes},
		{"conjunto vacío cae en apoderado", role.Set{}, role.Apoderado},
		{"nil cae en apoderado", nil, role.Apoderado},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.quiere, c.set.Primary())
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversiones y normalización defensiva
// ──────────────────────────────────────────────────────────────────────────────

func TestFromStrings_RoundTrip(t *testing.T) {
	in := []string{"admin", "usuario_bienes"}
	s := role.FromStrings(in)

	assert.Equal(t, role.Set{role.Admin, role.UsuarioBienes}, s)
	assert.Equal(t, in, s.Strings())
}

func TestOf_NormalizaCualquierForma(t *testing.T) {
	quiere := role.Set{role.Apoderado}

	assert.Equal(t, quiere, role.Of(role.Set{role.Apoderado}))
	assert.Equal(t, quiere, role.Of([]role.Role{role.Apoderado}))
	assert.Equal(t, quiere, role.Of([]string{"apoderado"}))
	assert.Equal(t, quiere, role.Of("apoderado"))
	assert.Equal(t, quiere, role.Of(role.Apoderado))
}

func TestOf_EntradasRarasDegradanAVacio(t *testing.T) {
	assert.Empty(t, role.Of(nil))
	assert.Empty(t, role.Of(42))
	assert.Empty(t, role.Of(map[string]bool{"admin": true}))
}

func TestOf_Carrier(t *testing.T) {
	u := &entity.User{Roles: role.Set{role.Admin}}
	assert.Equal(t, role.Set{role.Admin}, role.Of(u))

	var nulo *entity.User
	assert.Empty(t, role.Of(nulo), "un carrier nil degrada a conjunto vacío")
}

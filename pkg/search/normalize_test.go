package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postventa/garantias-api/pkg/search"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		nombre   string
		entrada  string
		esperado string
	}{
		{"minusculas", "MARTILLO", "martillo"},
		{"tildes", "Martíllo Eléctrico", "martillo electrico"},
		{"enie", "Añejo", "anejo"},
		{"dieresis", "Güincha", "guincha"},
		{"espacios extremos", "  taladro  ", "taladro"},
		{"ya normalizado", "sierra circular", "sierra circular"},
		{"vacio", "", ""},
		{"numeros y guiones", "SKU-1234", "sku-1234"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, search.Normalizar(c.entrada))
		})
	}
}

// Package search normaliza términos de búsqueda para comparaciones sin tildes
// ("García" y "garcia" deben coincidir en un ILIKE).
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarTildes = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar pasa el término a minúsculas y elimina marcas diacríticas.
// Ante una secuencia inválida devuelve el término en minúsculas tal cual.
func Normalizar(termino string) string {
	lower := strings.ToLower(strings.TrimSpace(termino))
	out, _, err := transform.String(quitarTildes, lower)
	if err != nil {
		return lower
	}
	return out
}

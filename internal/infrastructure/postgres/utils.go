package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/postventa/garantias-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// clausulaAlcance traduce un Alcance al predicado SQL de visibilidad:
// (owner_user_id = $n OR fabricante_id = ANY($m)). Los términos vacíos se
// omiten; sin ningún término la cláusula es FALSE: un alcance vacío no ve
// nada, nunca todo. Los filtros de búsqueda del caller se combinan después
// con AND, jamás reemplazan esta cláusula.
func clausulaAlcance(a repository.Alcance, args *[]any) string {
	var conds []string
	if a.OwnerUserID != "" {
		*args = append(*args, a.OwnerUserID)
		conds = append(conds, fmt.Sprintf("owner_user_id = $%d", len(*args)))
	}
	if len(a.FabricanteIDs) > 0 {
		*args = append(*args, a.FabricanteIDs)
		conds = append(conds, fmt.Sprintf("fabricante_id = ANY($%d)", len(*args)))
	}
	if len(conds) == 0 {
		return "FALSE"
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

// clausulaBusqueda añade los términos opcionales de búsqueda/estado como
// condiciones AND. columnasTexto son las columnas contra las que aplica el
// término (comparación sin tildes vía unaccent; la extensión debe existir en
// la base). Devuelve "" si no hay término alguno.
func clausulaBusqueda(b repository.Busqueda, args *[]any, conEstado bool, columnasTexto ...string) string {
	var conds []string
	if b.Texto != "" && len(columnasTexto) > 0 {
		*args = append(*args, "%"+b.Texto+"%")
		n := len(*args)
		var textos []string
		for _, col := range columnasTexto {
			textos = append(textos, fmt.Sprintf("unaccent(lower(%s)) LIKE $%d", col, n))
		}
		conds = append(conds, "("+strings.Join(textos, " OR ")+")")
	}
	if conEstado && b.Estado != "" {
		*args = append(*args, b.Estado)
		conds = append(conds, fmt.Sprintf("estado = $%d", len(*args)))
	}
	if len(conds) == 0 {
		return ""
	}
	return " AND " + strings.Join(conds, " AND ")
}

// paginacion añade LIMIT/OFFSET con defaults defensivos.
func paginacion(b repository.Busqueda, args *[]any) string {
	limit := b.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := b.Offset
	if offset < 0 {
		offset = 0
	}
	*args = append(*args, limit)
	l := len(*args)
	*args = append(*args, offset)
	return fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", l, l+1)
}

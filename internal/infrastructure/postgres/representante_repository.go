package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/postventa/garantias-api/internal/domain"
	"github.com/postventa/garantias-api/internal/domain/entity"
	"github.com/postventa/garantias-api/internal/domain/repository"
)

var _ repository.RepresentanteRepository = (*RepresentanteRepo)(nil)

// RepresentanteRepo implementación del puerto RepresentanteRepository sobre
// PostgreSQL. marca_ids se persiste como text[].
type RepresentanteRepo struct {
	q Querier
}

// NewRepresentanteRepository construye el adaptador de persistencia para representantes.
func NewRepresentanteRepository(q Querier) *RepresentanteRepo {
	return &RepresentanteRepo{q: q}
}

const representanteCols = `id, owner_user_id, nombre, email, telefono, marca_ids, created_at, updated_at`

// Create persiste un nuevo representante.
func (r *RepresentanteRepo) Create(ctx context.Context, rep *entity.Representante) error {
	query := `
		INSERT INTO representantes (id, owner_user_id, nombre, email, telefono, marca_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		rep.ID, rep.OwnerUserID, rep.Nombre, rep.Email, rep.Telefono, rep.MarcaIDs, rep.CreatedAt, rep.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert representante: %w", err)
	}
	return nil
}

// GetByID obtiene un representante por ID.
func (r *RepresentanteRepo) GetByID(ctx context.Context, id string) (*entity.Representante, error) {
	query := `SELECT ` + representanteCols + ` FROM representantes WHERE id = $1`
	var rep entity.Representante
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rep.ID, &rep.OwnerUserID, &rep.Nombre, &rep.Email, &rep.Telefono, &rep.MarcaIDs, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan representante: %w", err)
	}
	return &rep, nil
}

// Update actualiza un representante existente. El owner es inmutable.
func (r *RepresentanteRepo) Update(ctx context.Context, rep *entity.Representante) error {
	query := `
		UPDATE representantes SET nombre = $2, email = $3, telefono = $4, marca_ids = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, rep.ID, rep.Nombre, rep.Email, rep.Telefono, rep.MarcaIDs, rep.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update representante: %w", err)
	}
	return nil
}

// clausulaAlcanceRepresentante traduce el alcance de dos saltos de los
// representantes: propios, o con alguna marca representada accesible. El
// solapamiento de arrays usa el operador && de PostgreSQL. Sin términos la
// cláusula es FALSE.
func clausulaAlcanceRepresentante(a repository.AlcanceRepresentante, args *[]any) string {
	var conds []string
	if a.OwnerUserID != "" {
		*args = append(*args, a.OwnerUserID)
		conds = append(conds, fmt.Sprintf("owner_user_id = $%d", len(*args)))
	}
	if len(a.MarcaIDs) > 0 {
		*args = append(*args, a.MarcaIDs)
		conds = append(conds, fmt.Sprintf("marca_ids && $%d", len(*args)))
	}
	if len(conds) == 0 {
		return "FALSE"
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

// ListAccesibles lista los representantes dentro del alcance, acotados por búsqueda.
func (r *RepresentanteRepo) ListAccesibles(ctx context.Context, alcance repository.AlcanceRepresentante, b repository.Busqueda) ([]*entity.Representante, error) {
	var args []any
	query := `SELECT ` + representanteCols + ` FROM representantes WHERE ` + clausulaAlcanceRepresentante(alcance, &args)
	query += clausulaBusqueda(b, &args, false, "nombre", "email")
	query += paginacion(b, &args)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list representantes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Representante
	for rows.Next() {
		var rep entity.Representante
		if err := rows.Scan(&rep.ID, &rep.OwnerUserID, &rep.Nombre, &rep.Email, &rep.Telefono,
			&rep.MarcaIDs, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan representante: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// Delete elimina un representante por ID.
func (r *RepresentanteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM representantes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete representante: %w", err)
	}
	return nil
}

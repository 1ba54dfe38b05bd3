package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/postventa/garantias-api/internal/domain"
	"github.com/postventa/garantias-api/internal/domain/entity"
	"github.com/postventa/garantias-api/internal/domain/repository"
)

var _ repository.FabricanteRepository = (*FabricanteRepo)(nil)

// FabricanteRepo implementación del puerto FabricanteRepository sobre
// PostgreSQL. Los delegados se persisten como text[]; la consulta por accesor
// (apoderado_id = X OR X = ANY(delegados)) es la base del aislamiento de tenant.
type FabricanteRepo struct {
	q Querier
}

// NewFabricanteRepository construye el adaptador de persistencia para fabricantes.
func NewFabricanteRepository(q Querier) *FabricanteRepo {
	return &FabricanteRepo{q: q}
}

const fabricanteCols = `id, nombre, nit, apoderado_id, delegados, estado, created_at, updated_at`

// Create persiste un nuevo fabricante.
func (r *FabricanteRepo) Create(ctx context.Context, f *entity.Fabricante) error {
	query := `
		INSERT INTO fabricantes (` + fabricanteCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	delegados := f.Delegados
	if delegados == nil {
		delegados = []string{}
	}
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Nombre, f.NIT, f.ApoderadoID, delegados, f.Estado, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fabricante: %w", err)
	}
	return nil
}

func scanFabricante(row pgx.Row) (*entity.Fabricante, error) {
	var f entity.Fabricante
	err := row.Scan(&f.ID, &f.Nombre, &f.NIT, &f.ApoderadoID, &f.Delegados, &f.Estado, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan fabricante: %w", err)
	}
	return &f, nil
}

// GetByID obtiene un fabricante por ID.
func (r *FabricanteRepo) GetByID(ctx context.Context, id string) (*entity.Fabricante, error) {
	query := `SELECT ` + fabricanteCols + ` FROM fabricantes WHERE id = $1`
	return scanFabricante(r.q.QueryRow(ctx, query, id))
}

// Update actualiza nombre, NIT, titularidad y estado.
func (r *FabricanteRepo) Update(ctx context.Context, f *entity.Fabricante) error {
	query := `
		UPDATE fabricantes SET nombre = $2, nit = $3, apoderado_id = $4, estado = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, f.ID, f.Nombre, f.NIT, f.ApoderadoID, f.Estado, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update fabricante: %w", err)
	}
	return nil
}

func (r *FabricanteRepo) listar(ctx context.Context, query string, args ...any) ([]*entity.Fabricante, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fabricantes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fabricante
	for rows.Next() {
		var f entity.Fabricante
		if err := rows.Scan(&f.ID, &f.Nombre, &f.NIT, &f.ApoderadoID, &f.Delegados, &f.Estado, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fabricante: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// List lista todos los fabricantes con paginación (flujo admin).
func (r *FabricanteRepo) List(ctx context.Context, limit, offset int) ([]*entity.Fabricante, error) {
	query := `
		SELECT ` + fabricanteCols + ` FROM fabricantes
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listar(ctx, query, limit, offset)
}

// ListPorAccesor lista los fabricantes donde el usuario es representante
// legal o delegado.
func (r *FabricanteRepo) ListPorAccesor(ctx context.Context, userID string, limit, offset int) ([]*entity.Fabricante, error) {
	query := `
		SELECT ` + fabricanteCols + ` FROM fabricantes
		WHERE apoderado_id = $1 OR $1 = ANY(delegados)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.listar(ctx, query, userID, limit, offset)
}

func (r *FabricanteRepo) listarIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fabricante ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan fabricante id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListIDsPorAccesor devuelve los IDs del alcance de tenant del usuario.
func (r *FabricanteRepo) ListIDsPorAccesor(ctx context.Context, userID string) ([]string, error) {
	return r.listarIDs(ctx,
		`SELECT id FROM fabricantes WHERE apoderado_id = $1 OR $1 = ANY(delegados)`,
		userID,
	)
}

// ListIDsPorAccesorYEstado es la variante acotada por estado del fabricante.
func (r *FabricanteRepo) ListIDsPorAccesorYEstado(ctx context.Context, userID, estado string) ([]string, error) {
	return r.listarIDs(ctx,
		`SELECT id FROM fabricantes WHERE (apoderado_id = $1 OR $1 = ANY(delegados)) AND estado = $2`,
		userID, estado,
	)
}

// AgregarDelegado añade el usuario al arreglo de delegados si no está ya.
func (r *FabricanteRepo) AgregarDelegado(ctx context.Context, fabricanteID, userID string) error {
	_, err := r.q.Exec(ctx, `
		UPDATE fabricantes
		SET delegados = array_append(delegados, $2), updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(delegados))`,
		fabricanteID, userID,
	)
	if err != nil {
		return fmt.Errorf("agregar delegado: %w", err)
	}
	return nil
}

// QuitarDelegado retira el usuario del arreglo de delegados.
func (r *FabricanteRepo) QuitarDelegado(ctx context.Context, fabricanteID, userID string) error {
	_, err := r.q.Exec(ctx, `
		UPDATE fabricantes
		SET delegados = array_remove(delegados, $2), updated_at = now()
		WHERE id = $1`,
		fabricanteID, userID,
	)
	if err != nil {
		return fmt.Errorf("quitar delegado: %w", err)
	}
	return nil
}

// ExistePorApoderado indica si el usuario es representante legal de algún fabricante.
func (r *FabricanteRepo) ExistePorApoderado(ctx context.Context, userID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM fabricantes WHERE apoderado_id = $1)`,
		userID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe por apoderado: %w", err)
	}
	return existe, nil
}

// Delete elimina un fabricante por ID.
func (r *FabricanteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM fabricantes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fabricante: %w", err)
	}
	return nil
}

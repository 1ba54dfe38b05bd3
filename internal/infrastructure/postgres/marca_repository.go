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

var _ repository.MarcaRepository = (*MarcaRepo)(nil)

// MarcaRepo implementación del puerto MarcaRepository sobre PostgreSQL.
// fabricante_id es NULL cuando la marca no tiene fabricante; el dominio lo
// modela como "".
type MarcaRepo struct {
	q Querier
}

// NewMarcaRepository construye el adaptador de persistencia para marcas.
func NewMarcaRepository(q Querier) *MarcaRepo {
	return &MarcaRepo{q: q}
}

const marcaCols = `id, owner_user_id, COALESCE(fabricante_id, ''), nombre, logo_url, created_at, updated_at`

// Create persiste una nueva marca.
func (r *MarcaRepo) Create(ctx context.Context, m *entity.Marca) error {
	query := `
		INSERT INTO marcas (id, owner_user_id, fabricante_id, nombre, logo_url, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.OwnerUserID, m.FabricanteID, m.Nombre, m.LogoURL, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert marca: %w", err)
	}
	return nil
}

func scanMarca(row pgx.Row) (*entity.Marca, error) {
	var m entity.Marca
	err := row.Scan(&m.ID, &m.OwnerUserID, &m.FabricanteID, &m.Nombre, &m.LogoURL, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan marca: %w", err)
	}
	return &m, nil
}

// GetByID obtiene una marca por ID.
func (r *MarcaRepo) GetByID(ctx context.Context, id string) (*entity.Marca, error) {
	query := `SELECT ` + marcaCols + ` FROM marcas WHERE id = $1`
	return scanMarca(r.q.QueryRow(ctx, query, id))
}

// ListPorIDs resuelve varias marcas en un solo viaje.
func (r *MarcaRepo) ListPorIDs(ctx context.Context, ids []string) ([]*entity.Marca, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + marcaCols + ` FROM marcas WHERE id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list marcas por ids: %w", err)
	}
	defer rows.Close()
	return collectMarcas(rows)
}

func collectMarcas(rows pgx.Rows) ([]*entity.Marca, error) {
	var list []*entity.Marca
	for rows.Next() {
		var m entity.Marca
		if err := rows.Scan(&m.ID, &m.OwnerUserID, &m.FabricanteID, &m.Nombre, &m.LogoURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza una marca existente. Owner y fabricante son inmutables.
func (r *MarcaRepo) Update(ctx context.Context, m *entity.Marca) error {
	query := `
		UPDATE marcas SET nombre = $2, logo_url = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, m.ID, m.Nombre, m.LogoURL, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update marca: %w", err)
	}
	return nil
}

// ListAccesibles lista las marcas dentro del alcance, acotadas por búsqueda.
// El filtro de acceso siempre va primero; la búsqueda solo estrecha.
func (r *MarcaRepo) ListAccesibles(ctx context.Context, alcance repository.Alcance, b repository.Busqueda) ([]*entity.Marca, error) {
	var args []any
	query := `SELECT ` + marcaCols + ` FROM marcas WHERE ` + clausulaAlcance(alcance, &args)
	query += clausulaBusqueda(b, &args, false, "nombre")
	query += paginacion(b, &args)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list marcas: %w", err)
	}
	defer rows.Close()
	return collectMarcas(rows)
}

// ListIDsAccesibles devuelve solo los IDs dentro del alcance (salto
// intermedio del filtro de representantes).
func (r *MarcaRepo) ListIDsAccesibles(ctx context.Context, alcance repository.Alcance) ([]string, error) {
	var args []any
	query := `SELECT id FROM marcas WHERE ` + clausulaAlcance(alcance, &args)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list marca ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan marca id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete elimina una marca por ID.
func (r *MarcaRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM marcas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete marca: %w", err)
	}
	return nil
}

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

var _ repository.PiezaRepository = (*PiezaRepo)(nil)

// PiezaRepo implementación del puerto PiezaRepository sobre PostgreSQL.
type PiezaRepo struct {
	q Querier
}

// NewPiezaRepository construye el adaptador de persistencia para piezas.
func NewPiezaRepository(q Querier) *PiezaRepo {
	return &PiezaRepo{q: q}
}

const piezaCols = `id, owner_user_id, COALESCE(fabricante_id, ''), codigo, nombre, descripcion, precio, created_at, updated_at`

// Create persiste una nueva pieza.
func (r *PiezaRepo) Create(ctx context.Context, p *entity.Pieza) error {
	query := `
		INSERT INTO piezas (id, owner_user_id, fabricante_id, codigo, nombre, descripcion, precio, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.OwnerUserID, p.FabricanteID, p.Codigo, p.Nombre, p.Descripcion, p.Precio, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pieza: %w", err)
	}
	return nil
}

// GetByID obtiene una pieza por ID.
func (r *PiezaRepo) GetByID(ctx context.Context, id string) (*entity.Pieza, error) {
	query := `SELECT ` + piezaCols + ` FROM piezas WHERE id = $1`
	var p entity.Pieza
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.OwnerUserID, &p.FabricanteID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Precio, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan pieza: %w", err)
	}
	return &p, nil
}

// Update actualiza una pieza existente. Owner y fabricante son inmutables.
func (r *PiezaRepo) Update(ctx context.Context, p *entity.Pieza) error {
	query := `
		UPDATE piezas SET codigo = $2, nombre = $3, descripcion = $4, precio = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Precio, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update pieza: %w", err)
	}
	return nil
}

// ListAccesibles lista las piezas dentro del alcance, acotadas por búsqueda.
func (r *PiezaRepo) ListAccesibles(ctx context.Context, alcance repository.Alcance, b repository.Busqueda) ([]*entity.Pieza, error) {
	var args []any
	query := `SELECT ` + piezaCols + ` FROM piezas WHERE ` + clausulaAlcance(alcance, &args)
	query += clausulaBusqueda(b, &args, false, "nombre", "codigo")
	query += paginacion(b, &args)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list piezas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pieza
	for rows.Next() {
		var p entity.Pieza
		if err := rows.Scan(&p.ID, &p.OwnerUserID, &p.FabricanteID, &p.Codigo, &p.Nombre, &p.Descripcion,
			&p.Precio, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pieza: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListIDsAccesibles devuelve solo los IDs dentro del alcance (salto
// intermedio del filtro de inventario).
func (r *PiezaRepo) ListIDsAccesibles(ctx context.Context, alcance repository.Alcance) ([]string, error) {
	var args []any
	query := `SELECT id FROM piezas WHERE ` + clausulaAlcance(alcance, &args)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pieza ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan pieza id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete elimina una pieza por ID.
func (r *PiezaRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM piezas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pieza: %w", err)
	}
	return nil
}

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

var _ repository.GarantiaRepository = (*GarantiaRepo)(nil)

// GarantiaRepo implementación del puerto GarantiaRepository sobre PostgreSQL.
type GarantiaRepo struct {
	q Querier
}

// NewGarantiaRepository construye el adaptador de persistencia para garantías.
func NewGarantiaRepository(q Querier) *GarantiaRepo {
	return &GarantiaRepo{q: q}
}

const garantiaCols = `id, owner_user_id, COALESCE(fabricante_id, ''), inventario_item_id, descripcion,
	estado, fecha_solicitud, fecha_resolucion, created_at, updated_at`

// Create persiste una nueva garantía.
func (r *GarantiaRepo) Create(ctx context.Context, g *entity.Garantia) error {
	query := `
		INSERT INTO garantias (id, owner_user_id, fabricante_id, inventario_item_id, descripcion,
			estado, fecha_solicitud, fecha_resolucion, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		g.ID, g.OwnerUserID, g.FabricanteID, g.InventarioItemID, g.Descripcion,
		g.Estado, g.FechaSolicitud, g.FechaResolucion, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert garantia: %w", err)
	}
	return nil
}

// GetByID obtiene una garantía por ID.
func (r *GarantiaRepo) GetByID(ctx context.Context, id string) (*entity.Garantia, error) {
	query := `SELECT ` + garantiaCols + ` FROM garantias WHERE id = $1`
	var g entity.Garantia
	err := r.q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.OwnerUserID, &g.FabricanteID, &g.InventarioItemID, &g.Descripcion,
		&g.Estado, &g.FechaSolicitud, &g.FechaResolucion, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan garantia: %w", err)
	}
	return &g, nil
}

// Update actualiza el estado y resolución de una garantía.
func (r *GarantiaRepo) Update(ctx context.Context, g *entity.Garantia) error {
	query := `
		UPDATE garantias SET descripcion = $2, estado = $3, fecha_resolucion = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, g.ID, g.Descripcion, g.Estado, g.FechaResolucion, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update garantia: %w", err)
	}
	return nil
}

// ListAccesibles lista las garantías dentro del alcance, acotadas por
// búsqueda y filtro de estado.
func (r *GarantiaRepo) ListAccesibles(ctx context.Context, alcance repository.Alcance, b repository.Busqueda) ([]*entity.Garantia, error) {
	var args []any
	query := `SELECT ` + garantiaCols + ` FROM garantias WHERE ` + clausulaAlcance(alcance, &args)
	query += clausulaBusqueda(b, &args, true, "descripcion")
	query += paginacion(b, &args)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list garantias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Garantia
	for rows.Next() {
		var g entity.Garantia
		if err := rows.Scan(&g.ID, &g.OwnerUserID, &g.FabricanteID, &g.InventarioItemID, &g.Descripcion,
			&g.Estado, &g.FechaSolicitud, &g.FechaResolucion, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan garantia: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// ExistePorItem indica si un bien tiene garantías asociadas.
func (r *GarantiaRepo) ExistePorItem(ctx context.Context, itemID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM garantias WHERE inventario_item_id = $1)`, itemID).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe garantia por item: %w", err)
	}
	return existe, nil
}

// Delete elimina una garantía por ID.
func (r *GarantiaRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM garantias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete garantia: %w", err)
	}
	return nil
}

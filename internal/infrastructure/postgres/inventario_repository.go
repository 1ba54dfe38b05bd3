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

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación del puerto InventarioRepository sobre PostgreSQL.
// producto_id y pieza_id son NULLables; exactamente uno está presente por fila.
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador de persistencia para inventario.
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

const inventarioCols = `id, owner_user_id, COALESCE(producto_id, ''), COALESCE(pieza_id, ''),
	serial, cantidad, fecha_compra, created_at, updated_at`

// Create persiste un nuevo bien de inventario.
func (r *InventarioRepo) Create(ctx context.Context, i *entity.InventarioItem) error {
	query := `
		INSERT INTO inventario_items (id, owner_user_id, producto_id, pieza_id, serial, cantidad,
			fecha_compra, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.OwnerUserID, i.ProductoID, i.PiezaID, i.Serial, i.Cantidad, i.FechaCompra, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventario: %w", err)
	}
	return nil
}

// GetByID obtiene un bien por ID.
func (r *InventarioRepo) GetByID(ctx context.Context, id string) (*entity.InventarioItem, error) {
	query := `SELECT ` + inventarioCols + ` FROM inventario_items WHERE id = $1`
	var i entity.InventarioItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.OwnerUserID, &i.ProductoID, &i.PiezaID, &i.Serial, &i.Cantidad,
		&i.FechaCompra, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan inventario: %w", err)
	}
	return &i, nil
}

// Update actualiza un bien existente. Owner y referencia son inmutables.
func (r *InventarioRepo) Update(ctx context.Context, i *entity.InventarioItem) error {
	query := `
		UPDATE inventario_items SET serial = $2, cantidad = $3, fecha_compra = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, i.ID, i.Serial, i.Cantidad, i.FechaCompra, i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update inventario: %w", err)
	}
	return nil
}

// clausulaAlcanceInventario traduce el alcance de dos saltos del inventario:
// bienes propios, o cuya referencia (producto o pieza) ya es accesible. Sin
// términos la cláusula es FALSE.
func clausulaAlcanceInventario(a repository.AlcanceInventario, args *[]any) string {
	var conds []string
	if a.OwnerUserID != "" {
		*args = append(*args, a.OwnerUserID)
		conds = append(conds, fmt.Sprintf("owner_user_id = $%d", len(*args)))
	}
	if len(a.ProductoIDs) > 0 {
		*args = append(*args, a.ProductoIDs)
		conds = append(conds, fmt.Sprintf("producto_id = ANY($%d)", len(*args)))
	}
	if len(a.PiezaIDs) > 0 {
		*args = append(*args, a.PiezaIDs)
		conds = append(conds, fmt.Sprintf("pieza_id = ANY($%d)", len(*args)))
	}
	if len(conds) == 0 {
		return "FALSE"
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

// ListAccesibles lista los bienes dentro del alcance, acotados por búsqueda.
func (r *InventarioRepo) ListAccesibles(ctx context.Context, alcance repository.AlcanceInventario, b repository.Busqueda) ([]*entity.InventarioItem, error) {
	var args []any
	query := `SELECT ` + inventarioCols + ` FROM inventario_items WHERE ` + clausulaAlcanceInventario(alcance, &args)
	query += clausulaBusqueda(b, &args, false, "serial")
	query += paginacion(b, &args)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventarioItem
	for rows.Next() {
		var i entity.InventarioItem
		if err := rows.Scan(&i.ID, &i.OwnerUserID, &i.ProductoID, &i.PiezaID, &i.Serial, &i.Cantidad,
			&i.FechaCompra, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina un bien por ID.
func (r *InventarioRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventario_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventario: %w", err)
	}
	return nil
}

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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `id, owner_user_id, COALESCE(fabricante_id, ''), marca_id, nombre, modelo, sku,
	descripcion, precio, meses_garantia, created_at, updated_at`

// Create persiste un nuevo producto. El SKU es único por fabricante.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	query := `
		INSERT INTO productos (id, owner_user_id, fabricante_id, marca_id, nombre, modelo, sku,
			descripcion, precio, meses_garantia, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.OwnerUserID, p.FabricanteID, p.MarcaID, p.Nombre, p.Modelo, p.SKU,
		p.Descripcion, p.Precio, p.MesesGarantia, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.OwnerUserID, &p.FabricanteID, &p.MarcaID, &p.Nombre, &p.Modelo, &p.SKU,
		&p.Descripcion, &p.Precio, &p.MesesGarantia, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1`
	return scanProducto(r.q.QueryRow(ctx, query, id))
}

// GetByFabricanteYSKU busca un producto por la pareja fabricante + SKU.
func (r *ProductoRepo) GetByFabricanteYSKU(ctx context.Context, fabricanteID, sku string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE fabricante_id = $1 AND sku = $2`
	return scanProducto(r.q.QueryRow(ctx, query, fabricanteID, sku))
}

// Update actualiza un producto existente. Owner y fabricante son inmutables.
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos SET marca_id = $2, nombre = $3, modelo = $4, sku = $5,
			descripcion = $6, precio = $7, meses_garantia = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.MarcaID, p.Nombre, p.Modelo, p.SKU, p.Descripcion, p.Precio, p.MesesGarantia, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

func collectProductos(rows pgx.Rows) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.OwnerUserID, &p.FabricanteID, &p.MarcaID, &p.Nombre, &p.Modelo, &p.SKU,
			&p.Descripcion, &p.Precio, &p.MesesGarantia, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListAccesibles lista los productos dentro del alcance, acotados por búsqueda.
func (r *ProductoRepo) ListAccesibles(ctx context.Context, alcance repository.Alcance, b repository.Busqueda) ([]*entity.Producto, error) {
	var args []any
	query := `SELECT ` + productoCols + ` FROM productos WHERE ` + clausulaAlcance(alcance, &args)
	query += clausulaBusqueda(b, &args, false, "nombre", "modelo", "sku")
	query += paginacion(b, &args)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return collectProductos(rows)
}

// ListIDsAccesibles devuelve solo los IDs dentro del alcance (salto
// intermedio del filtro de inventario).
func (r *ProductoRepo) ListIDsAccesibles(ctx context.Context, alcance repository.Alcance) ([]string, error) {
	var args []any
	query := `SELECT id FROM productos WHERE ` + clausulaAlcance(alcance, &args)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list producto ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan producto id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ExistePorMarca indica si alguna marca tiene productos asociados.
func (r *ProductoRepo) ExistePorMarca(ctx context.Context, marcaID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM productos WHERE marca_id = $1)`, marcaID).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe producto por marca: %w", err)
	}
	return existe, nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

package repository

import (
	"context"

	"github.com/postventa/garantias-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(ctx context.Context, p *entity.Producto) error
	GetByID(ctx context.Context, id string) (*entity.Producto, error)
	GetByFabricanteYSKU(ctx context.Context, fabricanteID, sku string) (*entity.Producto, error)
	Update(ctx context.Context, p *entity.Producto) error
	ListAccesibles(ctx context.Context, alcance Alcance, b Busqueda) ([]*entity.Producto, error)
	ListIDsAccesibles(ctx context.Context, alcance Alcance) ([]string, error)
	// ExistePorMarca indica si alguna marca tiene productos (bloquea su borrado).
	ExistePorMarca(ctx context.Context, marcaID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

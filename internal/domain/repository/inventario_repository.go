package repository

import (
	"context"

	"github.com/postventa/garantias-api/internal/domain/entity"
)

// InventarioRepository define el puerto de persistencia para InventarioItem (DIP).
type InventarioRepository interface {
	Create(ctx context.Context, i *entity.InventarioItem) error
	GetByID(ctx context.Context, id string) (*entity.InventarioItem, error)
	Update(ctx context.Context, i *entity.InventarioItem) error
	ListAccesibles(ctx context.Context, alcance AlcanceInventario, b Busqueda) ([]*entity.InventarioItem, error)
	Delete(ctx context.Context, id string) error
}

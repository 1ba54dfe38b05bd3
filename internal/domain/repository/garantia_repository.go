package repository

import (
	"context"

	"github.com/postventa/garantias-api/internal/domain/entity"
)

// GarantiaRepository define el puerto de persistencia para Garantia (DIP).
type GarantiaRepository interface {
	Create(ctx context.Context, g *entity.Garantia) error
	GetByID(ctx context.Context, id string) (*entity.Garantia, error)
	Update(ctx context.Context, g *entity.Garantia) error
	ListAccesibles(ctx context.Context, alcance Alcance, b Busqueda) ([]*entity.Garantia, error)
	// ExistePorItem indica si un bien tiene garantías asociadas (bloquea su borrado).
	ExistePorItem(ctx context.Context, itemID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

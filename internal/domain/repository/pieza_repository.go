package repository

import (
	"context"

	"github.com/postventa/garantias-api/internal/domain/entity"
)

// PiezaRepository define el puerto de persistencia para Pieza (DIP).
type PiezaRepository interface {
	Create(ctx context.Context, p *entity.Pieza) error
	GetByID(ctx context.Context, id string) (*entity.Pieza, error)
	Update(ctx context.Context, p *entity.Pieza) error
	ListAccesibles(ctx context.Context, alcance Alcance, b Busqueda) ([]*entity.Pieza, error)
	ListIDsAccesibles(ctx context.Context, alcance Alcance) ([]string, error)
	Delete(ctx context.Context, id string) error
}

package repository

import (
	"context"

	"github.com/postventa/garantias-api/internal/domain/entity"
)

// RepresentanteRepository define el puerto de persistencia para Representante (DIP).
type RepresentanteRepository interface {
	Create(ctx context.Context, r *entity.Representante) error
	GetByID(ctx context.Context, id string) (*entity.Representante, error)
	Update(ctx context.Context, r *entity.Representante) error
	ListAccesibles(ctx context.Context, alcance AlcanceRepresentante, b Busqueda) ([]*entity.Representante, error)
	Delete(ctx context.Context, id string) error
}

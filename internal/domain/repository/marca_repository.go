package repository

import (
	"context"

	"github.com/postventa/garantias-api/internal/domain/entity"
)

// MarcaRepository define el puerto de persistencia para Marca (DIP).
type MarcaRepository interface {
	Create(ctx context.Context, m *entity.Marca) error
	GetByID(ctx context.Context, id string) (*entity.Marca, error)
	// ListPorIDs resuelve varias marcas en un solo viaje (salto intermedio del
	// predicado de representantes).
	ListPorIDs(ctx context.Context, ids []string) ([]*entity.Marca, error)
	Update(ctx context.Context, m *entity.Marca) error
	ListAccesibles(ctx context.Context, alcance Alcance, b Busqueda) ([]*entity.Marca, error)
	ListIDsAccesibles(ctx context.Context, alcance Alcance) ([]string, error)
	Delete(ctx context.Context, id string) error
}

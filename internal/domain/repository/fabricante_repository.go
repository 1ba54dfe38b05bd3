package repository

import (
	"context"

	"github.com/postventa/garantias-api/internal/domain/entity"
)

// FabricanteRepository define el puerto de persistencia para Fabricante (DIP).
// ListIDsPorAccesor es la consulta base del aislamiento de tenant: fabricantes
// donde el usuario es representante legal o delegado.
type FabricanteRepository interface {
	Create(ctx context.Context, f *entity.Fabricante) error
	GetByID(ctx context.Context, id string) (*entity.Fabricante, error)
	Update(ctx context.Context, f *entity.Fabricante) error
	List(ctx context.Context, limit, offset int) ([]*entity.Fabricante, error)
	ListPorAccesor(ctx context.Context, userID string, limit, offset int) ([]*entity.Fabricante, error)
	ListIDsPorAccesor(ctx context.Context, userID string) ([]string, error)
	ListIDsPorAccesorYEstado(ctx context.Context, userID, estado string) ([]string, error)
	AgregarDelegado(ctx context.Context, fabricanteID, userID string) error
	QuitarDelegado(ctx context.Context, fabricanteID, userID string) error
	// ExistePorApoderado indica si el usuario es representante legal de algún
	// fabricante (bloquea el borrado del usuario).
	ExistePorApoderado(ctx context.Context, userID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/postventa/garantias-api/internal/application/authz"
	"github.com/postventa/garantias-api/internal/application/dto"
	"github.com/postventa/garantias-api/internal/domain"
	"github.com/postventa/garantias-api/internal/domain/entity"
	"github.com/postventa/garantias-api/internal/domain/repository"
	"github.com/postventa/garantias-api/pkg/search"
)

// PiezaUseCase CRUD de piezas de recambio con control de acceso por recurso.
type PiezaUseCase struct {
	repo  repository.PiezaRepository
	authz *authz.Service
}

// NewPiezaUseCase construye el caso de uso.
func NewPiezaUseCase(repo repository.PiezaRepository, az *authz.Service) *PiezaUseCase {
	return &PiezaUseCase{repo: repo, authz: az}
}

// Create crea una pieza con el llamador como dueño. Si viene FabricanteID,
// debe ser un fabricante habilitado en el alcance de tenant del llamador.
func (uc *PiezaUseCase) Create(ctx context.Context, userID string, in dto.CreatePiezaRequest) (*dto.PiezaResponse, error) {
	if in.FabricanteID != "" {
		scope, err := uc.authz.TenantScopeConEstado(ctx, userID, entity.FabricanteHabilitado)
		if err != nil {
			return nil, err
		}
		if !contiene(scope, in.FabricanteID) {
			return nil, domain.ErrForbidden
		}
	}
	now := time.Now()
	p := &entity.Pieza{
		ID:           uuid.New().String(),
		OwnerUserID:  userID,
		FabricanteID: in.FabricanteID,
		Codigo:       in.Codigo,
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		Precio:       in.Precio,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPiezaResponse(p), nil
}

// GetByID obtiene una pieza tras pasar el predicado de acceso.
func (uc *PiezaUseCase) GetByID(ctx context.Context, userID, id string) (*dto.PiezaResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeAccederPieza(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	return toPiezaResponse(p), nil
}

// Update actualiza una pieza tras pasar el predicado de escritura.
func (uc *PiezaUseCase) Update(ctx context.Context, userID, id string, in dto.UpdatePiezaRequest) (*dto.PiezaResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeMutarPieza(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		p.Precio = *in.Precio
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPiezaResponse(p), nil
}

// List lista las piezas visibles para el usuario, acotadas por búsqueda.
func (uc *PiezaUseCase) List(ctx context.Context, userID string, texto string, limit, offset int) (*dto.PiezaListResponse, error) {
	alcance, err := uc.authz.AlcanceRecurso(ctx, userID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListAccesibles(ctx, alcance, repository.Busqueda{
		Texto:  search.Normalizar(texto),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PiezaResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPiezaResponse(p))
	}
	return &dto.PiezaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una pieza tras pasar el predicado de escritura.
func (uc *PiezaUseCase) Delete(ctx context.Context, userID, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	ok, err := uc.authz.PuedeMutarPieza(ctx, userID, p)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}

func toPiezaResponse(p *entity.Pieza) *dto.PiezaResponse {
	if p == nil {
		return nil
	}
	return &dto.PiezaResponse{
		ID:           p.ID,
		OwnerUserID:  p.OwnerUserID,
		FabricanteID: p.FabricanteID,
		Codigo:       p.Codigo,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Precio:       p.Precio,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

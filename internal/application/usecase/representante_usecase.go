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

// RepresentanteUseCase CRUD de representantes comerciales. El acceso se
// resuelve en dos saltos vía las marcas representadas.
type RepresentanteUseCase struct {
	repo      repository.RepresentanteRepository
	marcaRepo repository.MarcaRepository
	authz     *authz.Service
}

// NewRepresentanteUseCase construye el caso de uso.
func NewRepresentanteUseCase(repo repository.RepresentanteRepository, marcaRepo repository.MarcaRepository, az *authz.Service) *RepresentanteUseCase {
	return &RepresentanteUseCase{repo: repo, marcaRepo: marcaRepo, authz: az}
}

// validarMarcas exige que cada marca exista y admita escritura por el
// llamador: asociar un representante a una marca es una mutación del tenant.
func (uc *RepresentanteUseCase) validarMarcas(ctx context.Context, userID string, marcaIDs []string) error {
	if len(marcaIDs) == 0 {
		return nil
	}
	marcas, err := uc.marcaRepo.ListPorIDs(ctx, marcaIDs)
	if err != nil {
		return err
	}
	porID := make(map[string]*entity.Marca, len(marcas))
	for _, m := range marcas {
		porID[m.ID] = m
	}
	for _, id := range marcaIDs {
		m, existe := porID[id]
		if !existe {
			return domain.ErrNotFound
		}
		ok, err := uc.authz.PuedeMutarMarca(ctx, userID, m)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrForbidden
		}
	}
	return nil
}

// Create crea un representante con el llamador como dueño.
func (uc *RepresentanteUseCase) Create(ctx context.Context, userID string, in dto.CreateRepresentanteRequest) (*dto.RepresentanteResponse, error) {
	if err := uc.validarMarcas(ctx, userID, in.MarcaIDs); err != nil {
		return nil, err
	}
	marcaIDs := in.MarcaIDs
	if marcaIDs == nil {
		marcaIDs = []string{}
	}
	now := time.Now()
	r := &entity.Representante{
		ID:          uuid.New().String(),
		OwnerUserID: userID,
		Nombre:      in.Nombre,
		Email:       in.Email,
		Telefono:    in.Telefono,
		MarcaIDs:    marcaIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRepresentanteResponse(r), nil
}

// GetByID obtiene un representante tras pasar el predicado de dos saltos.
func (uc *RepresentanteUseCase) GetByID(ctx context.Context, userID, id string) (*dto.RepresentanteResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeAccederRepresentante(ctx, userID, r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	return toRepresentanteResponse(r), nil
}

// Update actualiza un representante tras pasar el predicado de escritura. Si
// cambia el conjunto de marcas, solo las marcas nuevas se validan: las que ya
// representa quedan adquiridas.
func (uc *RepresentanteUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateRepresentanteRequest) (*dto.RepresentanteResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeMutarRepresentante(ctx, userID, r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	if in.MarcaIDs != nil {
		var nuevas []string
		for _, marcaID := range in.MarcaIDs {
			if !r.Representa(marcaID) {
				nuevas = append(nuevas, marcaID)
			}
		}
		if err := uc.validarMarcas(ctx, userID, nuevas); err != nil {
			return nil, err
		}
		r.MarcaIDs = in.MarcaIDs
	}
	if in.Nombre != nil {
		r.Nombre = *in.Nombre
	}
	if in.Email != nil {
		r.Email = *in.Email
	}
	if in.Telefono != nil {
		r.Telefono = *in.Telefono
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRepresentanteResponse(r), nil
}

// List lista los representantes visibles con el alcance de dos saltos.
func (uc *RepresentanteUseCase) List(ctx context.Context, userID string, texto string, limit, offset int) (*dto.RepresentanteListResponse, error) {
	alcance, err := uc.authz.AlcanceRepresentante(ctx, userID)
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
	items := make([]dto.RepresentanteResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRepresentanteResponse(r))
	}
	return &dto.RepresentanteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un representante tras pasar el predicado de escritura.
func (uc *RepresentanteUseCase) Delete(ctx context.Context, userID, id string) error {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	ok, err := uc.authz.PuedeMutarRepresentante(ctx, userID, r)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}

func toRepresentanteResponse(r *entity.Representante) *dto.RepresentanteResponse {
	if r == nil {
		return nil
	}
	marcas := r.MarcaIDs
	if marcas == nil {
		marcas = []string{}
	}
	return &dto.RepresentanteResponse{
		ID:          r.ID,
		OwnerUserID: r.OwnerUserID,
		Nombre:      r.Nombre,
		Email:       r.Email,
		Telefono:    r.Telefono,
		MarcaIDs:    marcas,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

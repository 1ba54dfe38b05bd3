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
)

// FabricanteUseCase gestión de fabricantes y de su delegación. La titularidad
// (ApoderadoID) solo la muta un admin; los delegados los gestiona el admin o
// el propio representante legal.
type FabricanteUseCase struct {
	repo     repository.FabricanteRepository
	userRepo repository.UserRepository
}

// NewFabricanteUseCase construye el caso de uso.
func NewFabricanteUseCase(repo repository.FabricanteRepository, userRepo repository.UserRepository) *FabricanteUseCase {
	return &FabricanteUseCase{repo: repo, userRepo: userRepo}
}

// Create crea un fabricante. Un admin puede fijar ApoderadoID; cualquier otro
// llamador queda como representante legal de su propio fabricante.
func (uc *FabricanteUseCase) Create(ctx context.Context, claims authz.Claims, in dto.CreateFabricanteRequest) (*dto.FabricanteResponse, error) {
	apoderadoID := claims.UserID
	if in.ApoderadoID != "" {
		if !claims.EsAdmin() && in.ApoderadoID != claims.UserID {
			return nil, domain.ErrForbidden
		}
		apoderadoID = in.ApoderadoID
	}
	titular, err := uc.userRepo.GetByID(ctx, apoderadoID)
	if err != nil {
		return nil, err
	}
	if titular == nil {
		return nil, domain.ErrUserNotFound
	}
	now := time.Now()
	f := &entity.Fabricante{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		NIT:         in.NIT,
		ApoderadoID: apoderadoID,
		Delegados:   []string{},
		Estado:      entity.FabricanteHabilitado,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFabricanteResponse(f), nil
}

// GetByID obtiene un fabricante. Visible para admin o para quien esté en su
// alcance (representante legal o delegado).
func (uc *FabricanteUseCase) GetByID(ctx context.Context, claims authz.Claims, id string) (*dto.FabricanteResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	if !claims.EsAdmin() && !f.EnAlcanceDe(claims.UserID) {
		return nil, domain.ErrForbidden
	}
	return toFabricanteResponse(f), nil
}

// List lista fabricantes: todos para un admin, solo los del alcance del
// llamador en cualquier otro caso.
func (uc *FabricanteUseCase) List(ctx context.Context, claims authz.Claims, limit, offset int) (*dto.FabricanteListResponse, error) {
	var list []*entity.Fabricante
	var err error
	if claims.EsAdmin() {
		list, err = uc.repo.List(ctx, limit, offset)
	} else {
		list, err = uc.repo.ListPorAccesor(ctx, claims.UserID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.FabricanteResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFabricanteResponse(f))
	}
	return &dto.FabricanteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un fabricante. El representante legal puede tocar los
// campos de negocio; cambiar la titularidad exige rol admin.
func (uc *FabricanteUseCase) Update(ctx context.Context, claims authz.Claims, id string, in dto.UpdateFabricanteRequest) (*dto.FabricanteResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	if !claims.EsAdmin() && !f.EsApoderado(claims.UserID) {
		return nil, domain.ErrForbidden
	}
	if in.ApoderadoID != nil && *in.ApoderadoID != f.ApoderadoID {
		if !claims.EsAdmin() {
			return nil, domain.ErrForbidden
		}
		nuevo, err := uc.userRepo.GetByID(ctx, *in.ApoderadoID)
		if err != nil {
			return nil, err
		}
		if nuevo == nil {
			return nil, domain.ErrUserNotFound
		}
		f.ApoderadoID = *in.ApoderadoID
	}
	if in.Nombre != nil {
		f.Nombre = *in.Nombre
	}
	if in.NIT != nil {
		f.NIT = *in.NIT
	}
	if in.Estado != nil {
		f.Estado = *in.Estado
	}
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return toFabricanteResponse(f), nil
}

// AgregarDelegado añade un administrador delegado. El cambio se honra en la
// petición inmediatamente siguiente: no hay caché de alcance.
func (uc *FabricanteUseCase) AgregarDelegado(ctx context.Context, claims authz.Claims, fabricanteID string, in dto.DelegadoRequest) error {
	f, err := uc.repo.GetByID(ctx, fabricanteID)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	if !claims.EsAdmin() && !f.EsApoderado(claims.UserID) {
		return domain.ErrForbidden
	}
	delegado, err := uc.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return err
	}
	if delegado == nil {
		return domain.ErrUserNotFound
	}
	if f.EsDelegado(in.UserID) {
		return domain.ErrDuplicate
	}
	return uc.repo.AgregarDelegado(ctx, fabricanteID, in.UserID)
}

// QuitarDelegado retira un administrador delegado.
func (uc *FabricanteUseCase) QuitarDelegado(ctx context.Context, claims authz.Claims, fabricanteID, userID string) error {
	f, err := uc.repo.GetByID(ctx, fabricanteID)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	if !claims.EsAdmin() && !f.EsApoderado(claims.UserID) {
		return domain.ErrForbidden
	}
	if !f.EsDelegado(userID) {
		return domain.ErrNotFound
	}
	return uc.repo.QuitarDelegado(ctx, fabricanteID, userID)
}

// Delete elimina un fabricante (solo admin; la ruta ya aplica la puerta).
func (uc *FabricanteUseCase) Delete(ctx context.Context, id string) error {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toFabricanteResponse(f *entity.Fabricante) *dto.FabricanteResponse {
	if f == nil {
		return nil
	}
	delegados := f.Delegados
	if delegados == nil {
		delegados = []string{}
	}
	return &dto.FabricanteResponse{
		ID:          f.ID,
		Nombre:      f.Nombre,
		NIT:         f.NIT,
		ApoderadoID: f.ApoderadoID,
		Delegados:   delegados,
		Estado:      f.Estado,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

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

// MarcaUseCase CRUD de marcas con control de acceso por recurso: cada detalle
// o mutación pasa por el predicado, cada listado por el filtro de alcance.
type MarcaUseCase struct {
	repo         repository.MarcaRepository
	productoRepo repository.ProductoRepository
	authz        *authz.Service
}

// NewMarcaUseCase construye el caso de uso.
func NewMarcaUseCase(repo repository.MarcaRepository, productoRepo repository.ProductoRepository, az *authz.Service) *MarcaUseCase {
	return &MarcaUseCase{repo: repo, productoRepo: productoRepo, authz: az}
}

// Create crea una marca con el llamador como dueño. Si viene FabricanteID,
// debe ser un fabricante habilitado en el alcance de tenant del llamador.
func (uc *MarcaUseCase) Create(ctx context.Context, userID string, in dto.CreateMarcaRequest) (*dto.MarcaResponse, error) {
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
	m := &entity.Marca{
		ID:           uuid.New().String(),
		OwnerUserID:  userID,
		FabricanteID: in.FabricanteID,
		Nombre:       in.Nombre,
		LogoURL:      in.LogoURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMarcaResponse(m), nil
}

// GetByID obtiene una marca. Un predicado en false es ErrForbidden, nunca un
// not-found: el recurso existe, el llamador no lo alcanza.
func (uc *MarcaUseCase) GetByID(ctx context.Context, userID, id string) (*dto.MarcaResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeAccederMarca(ctx, userID, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	return toMarcaResponse(m), nil
}

// Update actualiza una marca tras pasar el predicado de escritura.
func (uc *MarcaUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateMarcaRequest) (*dto.MarcaResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeMutarMarca(ctx, userID, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	if in.Nombre != nil {
		m.Nombre = *in.Nombre
	}
	if in.LogoURL != nil {
		m.LogoURL = *in.LogoURL
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMarcaResponse(m), nil
}

// List lista las marcas visibles para el usuario, acotadas por búsqueda.
func (uc *MarcaUseCase) List(ctx context.Context, userID string, texto string, limit, offset int) (*dto.MarcaListResponse, error) {
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
	items := make([]dto.MarcaResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMarcaResponse(m))
	}
	return &dto.MarcaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una marca. Se bloquea mientras tenga productos (ErrEnUso):
// regla de integridad referencial, distinta de una falla de autorización.
func (uc *MarcaUseCase) Delete(ctx context.Context, userID, id string) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	ok, err := uc.authz.PuedeMutarMarca(ctx, userID, m)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	enUso, err := uc.productoRepo.ExistePorMarca(ctx, id)
	if err != nil {
		return err
	}
	if enUso {
		return domain.ErrEnUso
	}
	return uc.repo.Delete(ctx, id)
}

func toMarcaResponse(m *entity.Marca) *dto.MarcaResponse {
	if m == nil {
		return nil
	}
	return &dto.MarcaResponse{
		ID:           m.ID,
		OwnerUserID:  m.OwnerUserID,
		FabricanteID: m.FabricanteID,
		Nombre:       m.Nombre,
		LogoURL:      m.LogoURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// contiene verifica pertenencia en un slice de IDs.
func contiene(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

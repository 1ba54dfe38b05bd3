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

// ProductoUseCase CRUD de productos con control de acceso por recurso.
type ProductoUseCase struct {
	repo      repository.ProductoRepository
	marcaRepo repository.MarcaRepository
	authz     *authz.Service
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, marcaRepo repository.MarcaRepository, az *authz.Service) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, marcaRepo: marcaRepo, authz: az}
}

// Create crea un producto con el llamador como dueño. La marca debe existir y
// ser alcanzable; si viene FabricanteID, debe estar en el alcance del llamador
// y el SKU ser único dentro del fabricante.
func (uc *ProductoUseCase) Create(ctx context.Context, userID string, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	marca, err := uc.marcaRepo.GetByID(ctx, in.MarcaID)
	if err != nil {
		return nil, err
	}
	if marca == nil {
		return nil, domain.ErrNotFound
	}
	ok, err := uc.authz.PuedeMutarMarca(ctx, userID, marca)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	if in.FabricanteID != "" {
		scope, err := uc.authz.TenantScopeConEstado(ctx, userID, entity.FabricanteHabilitado)
		if err != nil {
			return nil, err
		}
		if !contiene(scope, in.FabricanteID) {
			return nil, domain.ErrForbidden
		}
		existing, _ := uc.repo.GetByFabricanteYSKU(ctx, in.FabricanteID, in.SKU)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	p := &entity.Producto{
		ID:            uuid.New().String(),
		OwnerUserID:   userID,
		FabricanteID:  in.FabricanteID,
		MarcaID:       in.MarcaID,
		Nombre:        in.Nombre,
		Modelo:        in.Modelo,
		SKU:           in.SKU,
		Descripcion:   in.Descripcion,
		Precio:        in.Precio,
		MesesGarantia: in.MesesGarantia,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto tras pasar el predicado de acceso.
func (uc *ProductoUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeAccederProducto(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	return toProductoResponse(p), nil
}

// Update actualiza un producto tras pasar el predicado de escritura.
func (uc *ProductoUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeMutarProducto(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Modelo != nil {
		p.Modelo = *in.Modelo
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		p.Precio = *in.Precio
	}
	if in.MesesGarantia != nil {
		p.MesesGarantia = *in.MesesGarantia
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// List lista los productos visibles para el usuario, acotados por búsqueda.
func (uc *ProductoUseCase) List(ctx context.Context, userID string, texto string, limit, offset int) (*dto.ProductoListResponse, error) {
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
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto tras pasar el predicado de escritura.
func (uc *ProductoUseCase) Delete(ctx context.Context, userID, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	ok, err := uc.authz.PuedeMutarProducto(ctx, userID, p)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:            p.ID,
		OwnerUserID:   p.OwnerUserID,
		FabricanteID:  p.FabricanteID,
		MarcaID:       p.MarcaID,
		Nombre:        p.Nombre,
		Modelo:        p.Modelo,
		SKU:           p.SKU,
		Descripcion:   p.Descripcion,
		Precio:        p.Precio,
		MesesGarantia: p.MesesGarantia,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

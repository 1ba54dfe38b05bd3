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

// InventarioUseCase gestión de bienes del inventario. El acceso se resuelve en
// dos saltos (item → producto|pieza → fabricante); la referencia es inmutable
// tras el alta.
type InventarioUseCase struct {
	repo         repository.InventarioRepository
	productoRepo repository.ProductoRepository
	piezaRepo    repository.PiezaRepository
	garantiaRepo repository.GarantiaRepository
	authz        *authz.Service
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(
	repo repository.InventarioRepository,
	productoRepo repository.ProductoRepository,
	piezaRepo repository.PiezaRepository,
	garantiaRepo repository.GarantiaRepository,
	az *authz.Service,
) *InventarioUseCase {
	return &InventarioUseCase{
		repo:         repo,
		productoRepo: productoRepo,
		piezaRepo:    piezaRepo,
		garantiaRepo: garantiaRepo,
		authz:        az,
	}
}

// Create registra un bien. Exactamente una referencia (producto o pieza) y la
// referencia debe existir: un alta contra una referencia irresoluble se
// rechaza de entrada.
func (uc *InventarioUseCase) Create(ctx context.Context, userID string, in dto.CreateInventarioRequest) (*dto.InventarioResponse, error) {
	cantidad := in.Cantidad
	if cantidad <= 0 {
		cantidad = 1
	}
	now := time.Now()
	item := &entity.InventarioItem{
		ID:          uuid.New().String(),
		OwnerUserID: userID,
		ProductoID:  in.ProductoID,
		PiezaID:     in.PiezaID,
		Serial:      in.Serial,
		Cantidad:    cantidad,
		FechaCompra: in.FechaCompra,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !item.ReferenciaValida() {
		return nil, domain.ErrInvalidInput
	}
	if item.ProductoID != "" {
		p, err := uc.productoRepo.GetByID(ctx, item.ProductoID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
	} else {
		p, err := uc.piezaRepo.GetByID(ctx, item.PiezaID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toInventarioResponse(item), nil
}

// GetByID obtiene un bien tras pasar el predicado de dos saltos.
func (uc *InventarioUseCase) GetByID(ctx context.Context, userID, id string) (*dto.InventarioResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeAccederInventario(ctx, userID, item)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	return toInventarioResponse(item), nil
}

// Update actualiza serial/cantidad/fecha tras pasar el predicado de escritura.
func (uc *InventarioUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateInventarioRequest) (*dto.InventarioResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeMutarInventario(ctx, userID, item)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	if in.Serial != nil {
		item.Serial = *in.Serial
	}
	if in.Cantidad != nil {
		item.Cantidad = *in.Cantidad
	}
	if in.FechaCompra != nil {
		item.FechaCompra = *in.FechaCompra
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toInventarioResponse(item), nil
}

// List lista los bienes visibles con el alcance de dos saltos pre-resuelto.
func (uc *InventarioUseCase) List(ctx context.Context, userID string, texto string, limit, offset int) (*dto.InventarioListResponse, error) {
	alcance, err := uc.authz.AlcanceInventario(ctx, userID)
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
	items := make([]dto.InventarioResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toInventarioResponse(it))
	}
	return &dto.InventarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un bien. Se bloquea mientras tenga garantías asociadas.
func (uc *InventarioUseCase) Delete(ctx context.Context, userID, id string) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	ok, err := uc.authz.PuedeMutarInventario(ctx, userID, item)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	enUso, err := uc.garantiaRepo.ExistePorItem(ctx, id)
	if err != nil {
		return err
	}
	if enUso {
		return domain.ErrEnUso
	}
	return uc.repo.Delete(ctx, id)
}

func toInventarioResponse(i *entity.InventarioItem) *dto.InventarioResponse {
	if i == nil {
		return nil
	}
	return &dto.InventarioResponse{
		ID:          i.ID,
		OwnerUserID: i.OwnerUserID,
		ProductoID:  i.ProductoID,
		PiezaID:     i.PiezaID,
		Serial:      i.Serial,
		Cantidad:    i.Cantidad,
		FechaCompra: i.FechaCompra,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

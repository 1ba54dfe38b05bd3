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

// GarantiaUseCase ciclo de vida de reclamos de garantía: alta, transición de
// estados y certificado PDF para garantías aprobadas.
type GarantiaUseCase struct {
	repo           repository.GarantiaRepository
	inventarioRepo repository.InventarioRepository
	productoRepo   repository.ProductoRepository
	piezaRepo      repository.PiezaRepository
	fabricanteRepo repository.FabricanteRepository
	txRunner       TxRunner
	pdfGen         CertificadoPDFGenerator
	authz          *authz.Service
}

// NewGarantiaUseCase construye el caso de uso. pdfGen puede ser nil si el
// despliegue no expone certificados.
func NewGarantiaUseCase(
	repo repository.GarantiaRepository,
	inventarioRepo repository.InventarioRepository,
	productoRepo repository.ProductoRepository,
	piezaRepo repository.PiezaRepository,
	fabricanteRepo repository.FabricanteRepository,
	txRunner TxRunner,
	pdfGen CertificadoPDFGenerator,
	az *authz.Service,
) *GarantiaUseCase {
	return &GarantiaUseCase{
		repo:           repo,
		inventarioRepo: inventarioRepo,
		productoRepo:   productoRepo,
		piezaRepo:      piezaRepo,
		fabricanteRepo: fabricanteRepo,
		txRunner:       txRunner,
		pdfGen:         pdfGen,
		authz:          az,
	}
}

// Crear presenta un reclamo sobre un bien alcanzable por el solicitante. El
// fabricante de la garantía se deriva del producto/pieza del bien; la
// re-lectura del bien y la inserción van en la misma transacción para no
// competir con un borrado concurrente del bien.
func (uc *GarantiaUseCase) Crear(ctx context.Context, userID string, in dto.CreateGarantiaRequest) (*dto.GarantiaResponse, error) {
	item, err := uc.inventarioRepo.GetByID(ctx, in.InventarioItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	ok, err := uc.authz.PuedeAccederInventario(ctx, userID, item)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	fabricanteID, err := uc.fabricanteDeItem(ctx, item)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	g := &entity.Garantia{
		ID:               uuid.New().String(),
		OwnerUserID:      userID,
		FabricanteID:     fabricanteID,
		InventarioItemID: item.ID,
		Descripcion:      in.Descripcion,
		Estado:           entity.GarantiaSolicitada,
		FechaSolicitud:   now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	err = uc.txRunner.Run(ctx, func(garantias repository.GarantiaRepository, inventario repository.InventarioRepository) error {
		vivo, err := inventario.GetByID(ctx, item.ID)
		if err != nil {
			return err
		}
		if vivo == nil {
			return domain.ErrNotFound
		}
		return garantias.Create(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	return toGarantiaResponse(g), nil
}

// fabricanteDeItem deriva el fabricante del producto o pieza del bien; ""
// cuando la referencia no tiene fabricante.
func (uc *GarantiaUseCase) fabricanteDeItem(ctx context.Context, item *entity.InventarioItem) (string, error) {
	if item.ProductoID != "" {
		p, err := uc.productoRepo.GetByID(ctx, item.ProductoID)
		if err != nil {
			return "", err
		}
		if p == nil {
			return "", nil
		}
		return p.FabricanteID, nil
	}
	p, err := uc.piezaRepo.GetByID(ctx, item.PiezaID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", nil
	}
	return p.FabricanteID, nil
}

// GetByID obtiene una garantía tras pasar el predicado de acceso.
func (uc *GarantiaUseCase) GetByID(ctx context.Context, userID, id string) (*dto.GarantiaResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeAccederGarantia(ctx, userID, g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	return toGarantiaResponse(g), nil
}

// List lista las garantías visibles, acotadas por estado y búsqueda.
func (uc *GarantiaUseCase) List(ctx context.Context, userID string, texto, estado string, limit, offset int) (*dto.GarantiaListResponse, error) {
	alcance, err := uc.authz.AlcanceRecurso(ctx, userID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListAccesibles(ctx, alcance, repository.Busqueda{
		Texto:  search.Normalizar(texto),
		Estado: estado,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.GarantiaResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGarantiaResponse(g))
	}
	return &dto.GarantiaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// CambiarEstado aplica una transición del grafo de estados. Aprobada y
// rechazada fijan la fecha de resolución.
func (uc *GarantiaUseCase) CambiarEstado(ctx context.Context, userID, id string, in dto.CambiarEstadoGarantiaRequest) (*dto.GarantiaResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	ok, err := uc.authz.PuedeMutarGarantia(ctx, userID, g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	if !g.TransicionValida(in.Estado) {
		return nil, domain.ErrEstadoInvalido
	}
	now := time.Now()
	g.Estado = in.Estado
	if g.Resuelta() && g.FechaResolucion == nil {
		g.FechaResolucion = &now
	}
	g.UpdatedAt = now
	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return toGarantiaResponse(g), nil
}

// Certificado genera el PDF del certificado de una garantía aprobada.
func (uc *GarantiaUseCase) Certificado(ctx context.Context, userID, id string) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrNotFound
	}
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	ok, err := uc.authz.PuedeAccederGarantia(ctx, userID, g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	if g.Estado != entity.GarantiaAprobada && g.Estado != entity.GarantiaCerrada {
		return nil, domain.ErrEstadoInvalido
	}
	item, err := uc.inventarioRepo.GetByID(ctx, g.InventarioItemID)
	if err != nil {
		return nil, err
	}
	var producto *entity.Producto
	var pieza *entity.Pieza
	if item != nil {
		if item.ProductoID != "" {
			producto, err = uc.productoRepo.GetByID(ctx, item.ProductoID)
		} else if item.PiezaID != "" {
			pieza, err = uc.piezaRepo.GetByID(ctx, item.PiezaID)
		}
		if err != nil {
			return nil, err
		}
	}
	var fabricante *entity.Fabricante
	if g.FabricanteID != "" {
		fabricante, err = uc.fabricanteRepo.GetByID(ctx, g.FabricanteID)
		if err != nil {
			return nil, err
		}
	}
	return uc.pdfGen.GenerarCertificado(ctx, g, item, producto, pieza, fabricante)
}

func toGarantiaResponse(g *entity.Garantia) *dto.GarantiaResponse {
	if g == nil {
		return nil
	}
	return &dto.GarantiaResponse{
		ID:               g.ID,
		OwnerUserID:      g.OwnerUserID,
		FabricanteID:     g.FabricanteID,
		InventarioItemID: g.InventarioItemID,
		Descripcion:      g.Descripcion,
		Estado:           g.Estado,
		FechaSolicitud:   g.FechaSolicitud,
		FechaResolucion:  g.FechaResolucion,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

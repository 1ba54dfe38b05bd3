// Package authz implementa el núcleo de autorización del sistema: el alcance
// de tenant de un usuario (fabricantes donde es representante legal o
// delegado), los predicados de acceso por tipo de recurso y los constructores
// de filtros de visibilidad para listados. Lectura y escritura usan alcances
// distintos: los predicados PuedeMutar* solo conceden por fabricantes
// habilitados, de modo que suspender un fabricante congela las mutaciones de
// sus recursos sin ocultarlos.
//
// Todas las decisiones son consultas de lectura frescas: no hay caché de
// roles, de alcance ni de propiedad, de modo que un cambio de delegación se
// honra en la petición inmediatamente siguiente. Un "sin acceso" normal se
// devuelve como false, nunca como error; los errores quedan reservados para
// fallos reales de infraestructura. Ante cualquier ambigüedad (referencia
// intermedia irresoluble) se niega el acceso: fail closed.
package authz

import (
	"context"
	"fmt"

	"github.com/postventa/garantias-api/internal/domain/entity"
	"github.com/postventa/garantias-api/internal/domain/repository"
)

// Recursos para métricas de decisiones.
const (
	RecursoMarca         = "marca"
	RecursoProducto      = "producto"
	RecursoPieza         = "pieza"
	RecursoInventario    = "inventario"
	RecursoGarantia      = "garantia"
	RecursoRepresentante = "representante"
)

// Recorder registra decisiones de autorización (prometheus en producción;
// nil-safe: un Service sin recorder no registra nada).
type Recorder interface {
	Decision(recurso string, permitido bool)
}

// Service resuelve alcance de tenant y predicados de acceso. No guarda estado
// entre llamadas: cada decisión consulta la persistencia en vivo.
type Service struct {
	fabricantes repository.FabricanteRepository
	marcas      repository.MarcaRepository
	productos   repository.ProductoRepository
	piezas      repository.PiezaRepository
	rec         Recorder
}

// NewService construye el servicio de autorización. rec puede ser nil.
func NewService(
	fabricantes repository.FabricanteRepository,
	marcas repository.MarcaRepository,
	productos repository.ProductoRepository,
	piezas repository.PiezaRepository,
	rec Recorder,
) *Service {
	return &Service{
		fabricantes: fabricantes,
		marcas:      marcas,
		productos:   productos,
		piezas:      piezas,
		rec:         rec,
	}
}

// TenantScope devuelve los IDs de fabricante sobre los que el usuario puede
// actuar: aquellos donde es representante legal o administrador delegado.
// Es la única fuente de verdad del aislamiento de tenant.
func (s *Service) TenantScope(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, nil
	}
	ids, err := s.fabricantes.ListIDsPorAccesor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("authz: alcance de tenant: %w", err)
	}
	return ids, nil
}

// TenantScopeConEstado es la variante acotada por estado del fabricante
// (p.ej. solo fabricantes habilitados).
func (s *Service) TenantScopeConEstado(ctx context.Context, userID, estado string) ([]string, error) {
	if userID == "" {
		return nil, nil
	}
	ids, err := s.fabricantes.ListIDsPorAccesorYEstado(ctx, userID, estado)
	if err != nil {
		return nil, fmt.Errorf("authz: alcance de tenant por estado: %w", err)
	}
	return ids, nil
}

// alcanceFn abstrae la fuente de alcance de tenant de un predicado: lectura
// (todo el alcance) o escritura (solo fabricantes habilitados).
type alcanceFn func(ctx context.Context, userID string) ([]string, error)

// alcanceEscritura acota el alcance a fabricantes habilitados: suspender un
// fabricante congela las mutaciones sobre sus recursos sin ocultarlos a la
// lectura. El dueño directo no pasa por aquí.
func (s *Service) alcanceEscritura(ctx context.Context, userID string) ([]string, error) {
	return s.TenantScopeConEstado(ctx, userID, entity.FabricanteHabilitado)
}

// tieneAcceso es el predicado genérico de un salto: dueño directo, o
// fabricante del recurso dentro del alcance indicado. Los predicados de dos
// saltos resuelven primero la entidad intermedia y luego componen este mismo
// chequeo.
func (s *Service) tieneAcceso(ctx context.Context, userID, ownerID, fabricanteID string, alcance alcanceFn) (bool, error) {
	if userID != "" && userID == ownerID {
		return true, nil
	}
	if fabricanteID == "" {
		return false, nil
	}
	scope, err := alcance(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range scope {
		if id == fabricanteID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) decide(recurso string, permitido bool, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	if s.rec != nil {
		s.rec.Decision(recurso, permitido)
	}
	return permitido, nil
}

// PuedeAccederMarca decide si el usuario puede leer la marca.
func (s *Service) PuedeAccederMarca(ctx context.Context, userID string, m *entity.Marca) (bool, error) {
	if m == nil {
		return false, nil
	}
	ok, err := s.tieneAcceso(ctx, userID, m.OwnerUserID, m.FabricanteID, s.TenantScope)
	return s.decide(RecursoMarca, ok, err)
}

// PuedeMutarMarca decide si el usuario puede mutar la marca: como la lectura,
// pero con el alcance de escritura.
func (s *Service) PuedeMutarMarca(ctx context.Context, userID string, m *entity.Marca) (bool, error) {
	if m == nil {
		return false, nil
	}
	ok, err := s.tieneAcceso(ctx, userID, m.OwnerUserID, m.FabricanteID, s.alcanceEscritura)
	return s.decide(RecursoMarca, ok, err)
}

// PuedeAccederProducto decide si el usuario puede leer el producto.
func (s *Service) PuedeAccederProducto(ctx context.Context, userID string, p *entity.Producto) (bool, error) {
	if p == nil {
		return false, nil
	}
	ok, err := s.tieneAcceso(ctx, userID, p.OwnerUserID, p.FabricanteID, s.TenantScope)
	return s.decide(RecursoProducto, ok, err)
}

// PuedeMutarProducto decide si el usuario puede mutar el producto.
func (s *Service) PuedeMutarProducto(ctx context.Context, userID string, p *entity.Producto) (bool, error) {
	if p == nil {
		return false, nil
	}
	ok, err := s.tieneAcceso(ctx, userID, p.OwnerUserID, p.FabricanteID, s.alcanceEscritura)
	return s.decide(RecursoProducto, ok, err)
}

// PuedeAccederPieza decide si el usuario puede leer la pieza.
func (s *Service) PuedeAccederPieza(ctx context.Context, userID string, p *entity.Pieza) (bool, error) {
	if p == nil {
		return false, nil
	}
	ok, err := s.tieneAcceso(ctx, userID, p.OwnerUserID, p.FabricanteID, s.TenantScope)
	return s.decide(RecursoPieza, ok, err)
}

// PuedeMutarPieza decide si el usuario puede mutar la pieza.
func (s *Service) PuedeMutarPieza(ctx context.Context, userID string, p *entity.Pieza) (bool, error) {
	if p == nil {
		return false, nil
	}
	ok, err := s.tieneAcceso(ctx, userID, p.OwnerUserID, p.FabricanteID, s.alcanceEscritura)
	return s.decide(RecursoPieza, ok, err)
}

// PuedeAccederGarantia decide si el usuario puede leer la garantía.
func (s *Service) PuedeAccederGarantia(ctx context.Context, userID string, g *entity.Garantia) (bool, error) {
	if g == nil {
		return false, nil
	}
	ok, err := s.tieneAcceso(ctx, userID, g.OwnerUserID, g.FabricanteID, s.TenantScope)
	return s.decide(RecursoGarantia, ok, err)
}

// PuedeMutarGarantia decide si el usuario puede mutar la garantía (transición
// de estados). El solicitante dueño no queda bloqueado por la suspensión.
func (s *Service) PuedeMutarGarantia(ctx context.Context, userID string, g *entity.Garantia) (bool, error) {
	if g == nil {
		return false, nil
	}
	ok, err := s.tieneAcceso(ctx, userID, g.OwnerUserID, g.FabricanteID, s.alcanceEscritura)
	return s.decide(RecursoGarantia, ok, err)
}

// PuedeAccederInventario decide en dos saltos: dueño directo, o fabricante del
// producto/pieza referenciado dentro del alcance. Si la referencia intermedia
// no resuelve, se niega (fail closed).
func (s *Service) PuedeAccederInventario(ctx context.Context, userID string, item *entity.InventarioItem) (bool, error) {
	return s.accedeInventario(ctx, userID, item, s.TenantScope)
}

// PuedeMutarInventario es la variante de escritura del predicado de dos saltos.
func (s *Service) PuedeMutarInventario(ctx context.Context, userID string, item *entity.InventarioItem) (bool, error) {
	return s.accedeInventario(ctx, userID, item, s.alcanceEscritura)
}

func (s *Service) accedeInventario(ctx context.Context, userID string, item *entity.InventarioItem, alcance alcanceFn) (bool, error) {
	if item == nil {
		return false, nil
	}
	if userID != "" && userID == item.OwnerUserID {
		return s.decide(RecursoInventario, true, nil)
	}
	fabricanteID, err := s.fabricanteDeItem(ctx, item)
	if err != nil {
		return false, err
	}
	if fabricanteID == "" {
		return s.decide(RecursoInventario, false, nil)
	}
	ok, err := s.tieneAcceso(ctx, userID, "", fabricanteID, alcance)
	return s.decide(RecursoInventario, ok, err)
}

// fabricanteDeItem resuelve el fabricante del producto o pieza referenciado.
// Devuelve "" cuando la referencia no existe o no tiene fabricante.
func (s *Service) fabricanteDeItem(ctx context.Context, item *entity.InventarioItem) (string, error) {
	switch {
	case item.ProductoID != "":
		p, err := s.productos.GetByID(ctx, item.ProductoID)
		if err != nil {
			return "", fmt.Errorf("authz: resolver producto del item: %w", err)
		}
		if p == nil {
			return "", nil
		}
		return p.FabricanteID, nil
	case item.PiezaID != "":
		p, err := s.piezas.GetByID(ctx, item.PiezaID)
		if err != nil {
			return "", fmt.Errorf("authz: resolver pieza del item: %w", err)
		}
		if p == nil {
			return "", nil
		}
		return p.FabricanteID, nil
	default:
		return "", nil
	}
}

// PuedeAccederRepresentante decide en dos saltos: dueño directo, o alguna
// marca representada cuyo fabricante esté en el alcance del usuario. Corta en
// la primera marca que conceda; el orden es irrelevante, la decisión es una
// disyunción.
func (s *Service) PuedeAccederRepresentante(ctx context.Context, userID string, rep *entity.Representante) (bool, error) {
	return s.accedeRepresentante(ctx, userID, rep, s.TenantScope)
}

// PuedeMutarRepresentante es la variante de escritura del predicado de dos
// saltos sobre las marcas representadas.
func (s *Service) PuedeMutarRepresentante(ctx context.Context, userID string, rep *entity.Representante) (bool, error) {
	return s.accedeRepresentante(ctx, userID, rep, s.alcanceEscritura)
}

func (s *Service) accedeRepresentante(ctx context.Context, userID string, rep *entity.Representante, alcance alcanceFn) (bool, error) {
	if rep == nil {
		return false, nil
	}
	if userID != "" && userID == rep.OwnerUserID {
		return s.decide(RecursoRepresentante, true, nil)
	}
	if len(rep.MarcaIDs) == 0 {
		return s.decide(RecursoRepresentante, false, nil)
	}
	scope, err := alcance(ctx, userID)
	if err != nil {
		return false, err
	}
	if len(scope) == 0 {
		return s.decide(RecursoRepresentante, false, nil)
	}
	enScope := make(map[string]struct{}, len(scope))
	for _, id := range scope {
		enScope[id] = struct{}{}
	}
	marcas, err := s.marcas.ListPorIDs(ctx, rep.MarcaIDs)
	if err != nil {
		return false, fmt.Errorf("authz: resolver marcas del representante: %w", err)
	}
	for _, m := range marcas {
		if m == nil || m.FabricanteID == "" {
			continue
		}
		if _, ok := enScope[m.FabricanteID]; ok {
			return s.decide(RecursoRepresentante, true, nil)
		}
	}
	return s.decide(RecursoRepresentante, false, nil)
}

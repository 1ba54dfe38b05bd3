package authz

import (
	"context"

	"github.com/postventa/garantias-api/internal/domain/repository"
)

// Constructores de filtros de visibilidad para listados. Cada constructor
// produce el filtro que, aplicado en la base de datos, devuelve exactamente el
// subconjunto que el predicado puntual correspondiente aceptaría instancia a
// instancia: listado y detalle nunca deben discrepar. Los tipos de dos saltos
// (inventario, representante) pre-resuelven los conjuntos de IDs intermedios
// para que el filtro final siga siendo una sola consulta.

// AlcanceRecurso construye el filtro de un salto (marca, producto, pieza,
// garantía): propios del usuario o de fabricantes en su alcance de tenant.
func (s *Service) AlcanceRecurso(ctx context.Context, userID string) (repository.Alcance, error) {
	scope, err := s.TenantScope(ctx, userID)
	if err != nil {
		return repository.Alcance{}, err
	}
	return repository.Alcance{OwnerUserID: userID, FabricanteIDs: scope}, nil
}

// AlcanceInventario construye el filtro de dos saltos del inventario:
// propios, o referenciando productos/piezas de fabricantes en el alcance.
//
// El conjunto intermedio se construye solo por fabricante, sin OwnerUserID:
// el predicado puntual concede por el fabricante del producto/pieza, no por su
// dueño, y listado y detalle deben coincidir exactamente.
func (s *Service) AlcanceInventario(ctx context.Context, userID string) (repository.AlcanceInventario, error) {
	scope, err := s.TenantScope(ctx, userID)
	if err != nil {
		return repository.AlcanceInventario{}, err
	}
	var productoIDs, piezaIDs []string
	if len(scope) > 0 {
		porFabricante := repository.Alcance{FabricanteIDs: scope}
		productoIDs, err = s.productos.ListIDsAccesibles(ctx, porFabricante)
		if err != nil {
			return repository.AlcanceInventario{}, err
		}
		piezaIDs, err = s.piezas.ListIDsAccesibles(ctx, porFabricante)
		if err != nil {
			return repository.AlcanceInventario{}, err
		}
	}
	return repository.AlcanceInventario{
		OwnerUserID: userID,
		ProductoIDs: productoIDs,
		PiezaIDs:    piezaIDs,
	}, nil
}

// AlcanceRepresentante construye el filtro de dos saltos de representantes:
// propios, o representando alguna marca ya visible para el usuario.
//
// Nota: la marca intermedia concede por su fabricante, no por su dueño; por
// eso el alcance de marcas se construye sin OwnerUserID. El dueño de una marca
// sin fabricante no alcanza, por esa marca, a representantes ajenos.
func (s *Service) AlcanceRepresentante(ctx context.Context, userID string) (repository.AlcanceRepresentante, error) {
	scope, err := s.TenantScope(ctx, userID)
	if err != nil {
		return repository.AlcanceRepresentante{}, err
	}
	var marcaIDs []string
	if len(scope) > 0 {
		marcaIDs, err = s.marcas.ListIDsAccesibles(ctx, repository.Alcance{FabricanteIDs: scope})
		if err != nil {
			return repository.AlcanceRepresentante{}, err
		}
	}
	return repository.AlcanceRepresentante{OwnerUserID: userID, MarcaIDs: marcaIDs}, nil
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postventa/garantias-api/internal/application/authz"
	"github.com/postventa/garantias-api/internal/application/dto"
	"github.com/postventa/garantias-api/internal/application/usecase"
	"github.com/postventa/garantias-api/internal/domain"
	"github.com/postventa/garantias-api/internal/domain/entity"
)

func escenarioGarantias() (*usecase.GarantiaUseCase, *fakeGarantiaRepo) {
	fabricantes := &fakeFabricanteRepo{porID: map[string]*entity.Fabricante{
		"fab-1": {ID: "fab-1", Nombre: "Acme Corp", ApoderadoID: "ana", Estado: entity.FabricanteHabilitado},
	}}
	marcas := &fakeMarcaRepo{porID: map[string]*entity.Marca{}}
	productos := &fakeProductoRepo{porID: map[string]*entity.Producto{
		"producto-1": {ID: "producto-1", OwnerUserID: "ana", FabricanteID: "fab-1", Nombre: "Taladro"},
	}, marcasConHijo: map[string]bool{}}
	piezas := &fakePiezaRepo{porID: map[string]*entity.Pieza{
		"pieza-suelta": {ID: "pieza-suelta", OwnerUserID: "carla", Nombre: "Correa"},
	}}
	inventario := &fakeInventarioRepo{porID: map[string]*entity.InventarioItem{
		"item-1": {ID: "item-1", OwnerUserID: "carla", ProductoID: "producto-1"},
		"item-2": {ID: "item-2", OwnerUserID: "carla", PiezaID: "pieza-suelta"},
	}}
	garantias := &fakeGarantiaRepo{porID: map[string]*entity.Garantia{}}
	tx := &fakeTxRunner{garantias: garantias, inventario: inventario}
	az := authz.NewService(fabricantes, marcas, productos, piezas, nil)

	uc := usecase.NewGarantiaUseCase(
		garantias, inventario, productos, piezas, fabricantes, tx, nil, az,
	)
	return uc, garantias
}

func TestGarantiaCrear_DerivaFabricanteDelProducto(t *testing.T) {
	uc, garantias := escenarioGarantias()
	ctx := context.Background()

	out, err := uc.Crear(ctx, "carla", dto.CreateGarantiaRequest{
		InventarioItemID: "item-1",
		Descripcion:      "no enciende",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.GarantiaSolicitada, out.Estado)
	assert.Equal(t, "fab-1", out.FabricanteID, "el fabricante se deriva del producto del bien")
	assert.Equal(t, "carla", out.OwnerUserID)
	assert.Contains(t, garantias.porID, out.ID)
}

func TestGarantiaCrear_SinFabricanteQuedaVacio(t *testing.T) {
	uc, _ := escenarioGarantias()

	out, err := uc.Crear(context.Background(), "carla", dto.CreateGarantiaRequest{
		InventarioItemID: "item-2",
		Descripcion:      "correa rota",
	})
	require.NoError(t, err)
	assert.Empty(t, out.FabricanteID, "pieza sin fabricante deja la garantía sin tenant")
}

func TestGarantiaCrear_BienAjenoEsForbidden(t *testing.T) {
	uc, _ := escenarioGarantias()

	_, err := uc.Crear(context.Background(), "bruno", dto.CreateGarantiaRequest{
		InventarioItemID: "item-2",
		Descripcion:      "no es mío",
	})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGarantiaCrear_BienInexistente(t *testing.T) {
	uc, _ := escenarioGarantias()

	_, err := uc.Crear(context.Background(), "carla", dto.CreateGarantiaRequest{
		InventarioItemID: "item-fantasma",
		Descripcion:      "x",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGarantiaCambiarEstado_FlujoCompleto(t *testing.T) {
	uc, _ := escenarioGarantias()
	ctx := context.Background()

	creada, err := uc.Crear(ctx, "carla", dto.CreateGarantiaRequest{
		InventarioItemID: "item-1",
		Descripcion:      "no enciende",
	})
	require.NoError(t, err)

	// La apoderada del fabricante tramita el reclamo.
	out, err := uc.CambiarEstado(ctx, "ana", creada.ID, dto.CambiarEstadoGarantiaRequest{Estado: entity.GarantiaEnRevision})
	require.NoError(t, err)
	assert.Equal(t, entity.GarantiaEnRevision, out.Estado)
	assert.Nil(t, out.FechaResolucion)

	out, err = uc.CambiarEstado(ctx, "ana", creada.ID, dto.CambiarEstadoGarantiaRequest{Estado: entity.GarantiaAprobada})
	require.NoError(t, err)
	assert.Equal(t, entity.GarantiaAprobada, out.Estado)
	require.NotNil(t, out.FechaResolucion, "aprobar fija la fecha de resolución")
	resuelta := *out.FechaResolucion

	out, err = uc.CambiarEstado(ctx, "ana", creada.ID, dto.CambiarEstadoGarantiaRequest{Estado: entity.GarantiaCerrada})
	require.NoError(t, err)
	assert.Equal(t, entity.GarantiaCerrada, out.Estado)
	require.NotNil(t, out.FechaResolucion)
	assert.Equal(t, resuelta, *out.FechaResolucion, "cerrar no reescribe la fecha de resolución")
}

func TestGarantiaCambiarEstado_TransicionInvalida(t *testing.T) {
	uc, _ := escenarioGarantias()
	ctx := context.Background()

	creada, err := uc.Crear(ctx, "carla", dto.CreateGarantiaRequest{
		InventarioItemID: "item-1",
		Descripcion:      "no enciende",
	})
	require.NoError(t, err)

	// solicitada → cerrada no está en el grafo.
	_, err = uc.CambiarEstado(ctx, "ana", creada.ID, dto.CambiarEstadoGarantiaRequest{Estado: entity.GarantiaCerrada})
	require.ErrorIs(t, err, domain.ErrEstadoInvalido)
}

func TestGarantiaCambiarEstado_TerceroEsForbidden(t *testing.T) {
	uc, _ := escenarioGarantias()
	ctx := context.Background()

	creada, err := uc.Crear(ctx, "carla", dto.CreateGarantiaRequest{
		InventarioItemID: "item-1",
		Descripcion:      "no enciende",
	})
	require.NoError(t, err)

	_, err = uc.CambiarEstado(ctx, "bruno", creada.ID, dto.CambiarEstadoGarantiaRequest{Estado: entity.GarantiaEnRevision})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGarantiaCertificado_SinGeneradorNiEstado(t *testing.T) {
	uc, garantias := escenarioGarantias()
	ctx := context.Background()

	garantias.porID["g-1"] = &entity.Garantia{
		ID:          "g-1",
		OwnerUserID: "carla",
		Estado:      entity.GarantiaSolicitada,
	}

	// El despliegue de prueba no inyecta generador de PDF.
	_, err := uc.Certificado(ctx, "carla", "g-1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

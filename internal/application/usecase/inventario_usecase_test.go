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

func escenarioInventario() (*usecase.InventarioUseCase, *fakeInventarioRepo) {
	fabricantes := &fakeFabricanteRepo{porID: map[string]*entity.Fabricante{
		"fab-1": {ID: "fab-1", ApoderadoID: "ana", Estado: entity.FabricanteHabilitado},
	}}
	marcas := &fakeMarcaRepo{porID: map[string]*entity.Marca{}}
	productos := &fakeProductoRepo{porID: map[string]*entity.Producto{
		"producto-1": {ID: "producto-1", OwnerUserID: "ana", FabricanteID: "fab-1", Nombre: "Taladro"},
	}, marcasConHijo: map[string]bool{}}
	piezas := &fakePiezaRepo{porID: map[string]*entity.Pieza{}}
	inventario := &fakeInventarioRepo{porID: map[string]*entity.InventarioItem{}}
	garantias := &fakeGarantiaRepo{porID: map[string]*entity.Garantia{}}
	az := authz.NewService(fabricantes, marcas, productos, piezas, nil)
	uc := usecase.NewInventarioUseCase(inventario, productos, piezas, garantias, az)
	return uc, inventario
}

// El alta exige exactamente una referencia: ni ninguna ni ambas.
func TestInventarioCreate_ReferenciaExactamenteUna(t *testing.T) {
	uc, inventario := escenarioInventario()
	ctx := context.Background()

	_, err := uc.Create(ctx, "carla", dto.CreateInventarioRequest{Serial: "S-1"})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "sin referencia")

	_, err = uc.Create(ctx, "carla", dto.CreateInventarioRequest{
		ProductoID: "producto-1",
		PiezaID:    "pieza-x",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "ambas referencias")

	out, err := uc.Create(ctx, "carla", dto.CreateInventarioRequest{ProductoID: "producto-1"})
	require.NoError(t, err)
	assert.Equal(t, "carla", out.OwnerUserID)
	assert.Equal(t, 1, out.Cantidad, "cantidad por defecto")
	assert.Contains(t, inventario.porID, out.ID)
}

func TestInventarioCreate_ReferenciaInexistente(t *testing.T) {
	uc, _ := escenarioInventario()

	_, err := uc.Create(context.Background(), "carla", dto.CreateInventarioRequest{
		ProductoID: "producto-fantasma",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

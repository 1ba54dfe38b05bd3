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

func escenarioMarcas() (*usecase.MarcaUseCase, *fakeMarcaRepo, *fakeProductoRepo) {
	fabricantes := &fakeFabricanteRepo{porID: map[string]*entity.Fabricante{
		"fab-1": {ID: "fab-1", ApoderadoID: "ana", Delegados: []string{"diego"}, Estado: entity.FabricanteHabilitado},
	}}
	marcas := &fakeMarcaRepo{porID: map[string]*entity.Marca{
		"marca-1":      {ID: "marca-1", OwnerUserID: "ana", FabricanteID: "fab-1", Nombre: "Acme"},
		"marca-suelta": {ID: "marca-suelta", OwnerUserID: "carla", Nombre: "Libre"},
	}}
	productos := &fakeProductoRepo{
		porID:         map[string]*entity.Producto{},
		marcasConHijo: map[string]bool{"marca-1": true},
	}
	piezas := &fakePiezaRepo{porID: map[string]*entity.Pieza{}}
	az := authz.NewService(fabricantes, marcas, productos, piezas, nil)
	return usecase.NewMarcaUseCase(marcas, productos, az), marcas, productos
}

// Un predicado en false es 403, nunca 404: el recurso existe, el llamador no
// lo alcanza. Un recurso inexistente es nil sin error.
func TestMarcaGetByID_ForbiddenNoEsNotFound(t *testing.T) {
	uc, _, _ := escenarioMarcas()
	ctx := context.Background()

	out, err := uc.GetByID(ctx, "carla", "marca-1")
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, out)

	out, err = uc.GetByID(ctx, "ana", "marca-fantasma")
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = uc.GetByID(ctx, "diego", "marca-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Acme", out.Nombre)
}

func TestMarcaCreate_FabricanteFueraDeAlcance(t *testing.T) {
	uc, marcas, _ := escenarioMarcas()
	ctx := context.Background()

	_, err := uc.Create(ctx, "carla", dto.CreateMarcaRequest{
		Nombre:       "Intrusa",
		FabricanteID: "fab-1",
	})
	require.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Create(ctx, "diego", dto.CreateMarcaRequest{
		Nombre:       "Delegada",
		FabricanteID: "fab-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "diego", out.OwnerUserID)
	assert.Contains(t, marcas.porID, out.ID)
}

func TestMarcaDelete_BloqueadaConProductos(t *testing.T) {
	uc, marcas, _ := escenarioMarcas()
	ctx := context.Background()

	err := uc.Delete(ctx, "ana", "marca-1")
	require.ErrorIs(t, err, domain.ErrEnUso)
	assert.Contains(t, marcas.porID, "marca-1", "la marca en uso no se borra")

	err = uc.Delete(ctx, "carla", "marca-suelta")
	require.NoError(t, err)
	assert.NotContains(t, marcas.porID, "marca-suelta")
}

func TestMarcaDelete_NotFound(t *testing.T) {
	uc, _, _ := escenarioMarcas()

	err := uc.Delete(context.Background(), "ana", "marca-fantasma")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// La suspensión del fabricante congela las mutaciones concedidas vía tenant:
// la marca sigue legible pero la delegada no puede editarla, borrarla ni crear
// marcas nuevas bajo ese fabricante. El dueño directo no pasa por el alcance.
func TestMarcaMutaciones_FabricanteSuspendido(t *testing.T) {
	fabricantes := &fakeFabricanteRepo{porID: map[string]*entity.Fabricante{
		"fab-2": {ID: "fab-2", ApoderadoID: "bruno", Delegados: []string{"elena"}, Estado: entity.FabricanteSuspendido},
	}}
	marcas := &fakeMarcaRepo{porID: map[string]*entity.Marca{
		"marca-2": {ID: "marca-2", OwnerUserID: "bruno", FabricanteID: "fab-2", Nombre: "Antigua"},
	}}
	productos := &fakeProductoRepo{porID: map[string]*entity.Producto{}, marcasConHijo: map[string]bool{}}
	piezas := &fakePiezaRepo{porID: map[string]*entity.Pieza{}}
	az := authz.NewService(fabricantes, marcas, productos, piezas, nil)
	uc := usecase.NewMarcaUseCase(marcas, productos, az)
	ctx := context.Background()

	out, err := uc.GetByID(ctx, "elena", "marca-2")
	require.NoError(t, err)
	require.NotNil(t, out, "la lectura sigue funcionando sobre el fabricante suspendido")

	nombre := "Renombrada"
	_, err = uc.Update(ctx, "elena", "marca-2", dto.UpdateMarcaRequest{Nombre: &nombre})
	require.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(ctx, "elena", "marca-2")
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(ctx, "elena", dto.CreateMarcaRequest{Nombre: "Nueva", FabricanteID: "fab-2"})
	require.ErrorIs(t, err, domain.ErrForbidden)

	res, err := uc.Update(ctx, "bruno", "marca-2", dto.UpdateMarcaRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Renombrada", res.Nombre, "el dueño directo sigue mutando")
}

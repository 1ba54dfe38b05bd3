package authz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postventa/garantias-api/internal/application/authz"
	"github.com/postventa/garantias-api/internal/domain/entity"
	"github.com/postventa/garantias-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// Implementan los puertos sobre mapas y aplican los filtros de alcance con la
// misma semántica que las cláusulas SQL de producción: dueño directo o
// fabricante dentro del conjunto. Los métodos no usados por el servicio de
// autorización quedan en la interfaz embebida y entrarían en pánico si algo
// los invocara por accidente.
// ──────────────────────────────────────────────────────────────────────────────

func enAlcance(a repository.Alcance, ownerID, fabricanteID string) bool {
	if a.OwnerUserID != "" && a.OwnerUserID == ownerID {
		return true
	}
	for _, id := range a.FabricanteIDs {
		if fabricanteID != "" && id == fabricanteID {
			return true
		}
	}
	return false
}

type fakeFabricantes struct {
	repository.FabricanteRepository
	porID map[string]*entity.Fabricante
}

func (f *fakeFabricantes) ListIDsPorAccesor(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for id, fab := range f.porID {
		if fab.EnAlcanceDe(userID) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeFabricantes) ListIDsPorAccesorYEstado(_ context.Context, userID, estado string) ([]string, error) {
	var ids []string
	for id, fab := range f.porID {
		if fab.EnAlcanceDe(userID) && fab.Estado == estado {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeMarcas struct {
	repository.MarcaRepository
	porID map[string]*entity.Marca
}

func (f *fakeMarcas) ListPorIDs(_ context.Context, ids []string) ([]*entity.Marca, error) {
	var out []*entity.Marca
	for _, id := range ids {
		if m, ok := f.porID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMarcas) ListIDsAccesibles(_ context.Context, a repository.Alcance) ([]string, error) {
	var ids []string
	for id, m := range f.porID {
		if enAlcance(a, m.OwnerUserID, m.FabricanteID) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeProductos struct {
	repository.ProductoRepository
	porID map[string]*entity.Producto
}

func (f *fakeProductos) GetByID(_ context.Context, id string) (*entity.Producto, error) {
	return f.porID[id], nil
}

func (f *fakeProductos) ListIDsAccesibles(_ context.Context, a repository.Alcance) ([]string, error) {
	var ids []string
	for id, p := range f.porID {
		if enAlcance(a, p.OwnerUserID, p.FabricanteID) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakePiezas struct {
	repository.PiezaRepository
	porID map[string]*entity.Pieza
}

func (f *fakePiezas) GetByID(_ context.Context, id string) (*entity.Pieza, error) {
	return f.porID[id], nil
}

func (f *fakePiezas) ListIDsAccesibles(_ context.Context, a repository.Alcance) ([]string, error) {
	var ids []string
	for id, p := range f.porID {
		if enAlcance(a, p.OwnerUserID, p.FabricanteID) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// mundo arma un escenario compartido:
//
//	fab-1  apoderado=ana   delegados=[diego]   habilitado
//	fab-2  apoderado=bruno                     suspendido
//
//	marca-1     fabricante=fab-1  owner=ana
//	marca-suelta              ""  owner=carla   (sin fabricante)
//	producto-1  fabricante=fab-1  owner=ana
//	producto-2  fabricante=fab-2  owner=bruno
//	pieza-1     fabricante=fab-1  owner=diego
//	pieza-suelta            ""    owner=carla
func mundo() (*fakeFabricantes, *fakeMarcas, *fakeProductos, *fakePiezas) {
	fabricantes := &fakeFabricantes{porID: map[string]*entity.Fabricante{
		"fab-1": {ID: "fab-1", ApoderadoID: "ana", Delegados: []string{"diego"}, Estado: entity.FabricanteHabilitado},
		"fab-2": {ID: "fab-2", ApoderadoID: "bruno", Estado: entity.FabricanteSuspendido},
	}}
	marcas := &fakeMarcas{porID: map[string]*entity.Marca{
		"marca-1":      {ID: "marca-1", OwnerUserID: "ana", FabricanteID: "fab-1"},
		"marca-suelta": {ID: "marca-suelta", OwnerUserID: "carla"},
	}}
	productos := &fakeProductos{porID: map[string]*entity.Producto{
		"producto-1": {ID: "producto-1", OwnerUserID: "ana", FabricanteID: "fab-1"},
		"producto-2": {ID: "producto-2", OwnerUserID: "bruno", FabricanteID: "fab-2"},
	}}
	piezas := &fakePiezas{porID: map[string]*entity.Pieza{
		"pieza-1":      {ID: "pieza-1", OwnerUserID: "diego", FabricanteID: "fab-1"},
		"pieza-suelta": {ID: "pieza-suelta", OwnerUserID: "carla"},
	}}
	return fabricantes, marcas, productos, piezas
}

func servicio() (*authz.Service, *fakeFabricantes, *fakeMarcas, *fakeProductos, *fakePiezas) {
	fabricantes, marcas, productos, piezas := mundo()
	return authz.NewService(fabricantes, marcas, productos, piezas, nil), fabricantes, marcas, productos, piezas
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance de tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantScope(t *testing.T) {
	svc, _, _, _, _ := servicio()
	ctx := context.Background()

	scope, err := svc.TenantScope(ctx, "ana")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"fab-1"}, scope, "ana es apoderada de fab-1")

	scope, err = svc.TenantScope(ctx, "diego")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"fab-1"}, scope, "diego es delegado de fab-1")

	scope, err = svc.TenantScope(ctx, "carla")
	require.NoError(t, err)
	assert.Empty(t, scope, "carla no representa ni delega ningún fabricante")

	scope, err = svc.TenantScope(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, scope, "usuario vacío no tiene alcance")
}

func TestTenantScopeConEstado(t *testing.T) {
	svc, _, _, _, _ := servicio()
	ctx := context.Background()

	scope, err := svc.TenantScopeConEstado(ctx, "bruno", entity.FabricanteHabilitado)
	require.NoError(t, err)
	assert.Empty(t, scope, "fab-2 está suspendido")

	scope, err = svc.TenantScopeConEstado(ctx, "bruno", entity.FabricanteSuspendido)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"fab-2"}, scope)
}

// La delegación no se cachea: quitarla se honra en la consulta siguiente.
func TestTenantScope_SinCacheDeDelegacion(t *testing.T) {
	svc, fabricantes, _, _, _ := servicio()
	ctx := context.Background()

	scope, err := svc.TenantScope(ctx, "diego")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"fab-1"}, scope)

	fabricantes.porID["fab-1"].Delegados = nil

	scope, err = svc.TenantScope(ctx, "diego")
	require.NoError(t, err)
	assert.Empty(t, scope, "la delegación retirada deja de contar de inmediato")
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados de un salto
// ──────────────────────────────────────────────────────────────────────────────

func TestPuedeAccederMarca(t *testing.T) {
	svc, _, marcas, _, _ := servicio()
	ctx := context.Background()

	casos := []struct {
		nombre string
		userID string
		marca  string
		quiere bool
	}{
		{"dueña directa", "ana", "marca-1", true},
		{"delegado vía fabricante", "diego", "marca-1", true},
		{"tercero sin relación", "bruno", "marca-1", false},
		{"dueña de marca sin fabricante", "carla", "marca-suelta", true},
		{"marca sin fabricante no concede a terceros", "ana", "marca-suelta", false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			ok, err := svc.PuedeAccederMarca(ctx, c.userID, marcas.porID[c.marca])
			require.NoError(t, err)
			assert.Equal(t, c.quiere, ok)
		})
	}
}

func TestPuedeAccederProducto_YGarantia(t *testing.T) {
	svc, _, _, productos, _ := servicio()
	ctx := context.Background()

	ok, err := svc.PuedeAccederProducto(ctx, "diego", productos.porID["producto-1"])
	require.NoError(t, err)
	assert.True(t, ok, "delegado alcanza los productos del fabricante")

	ok, err = svc.PuedeAccederProducto(ctx, "diego", productos.porID["producto-2"])
	require.NoError(t, err)
	assert.False(t, ok, "fab-2 está fuera del alcance de diego")

	g := &entity.Garantia{OwnerUserID: "carla", FabricanteID: "fab-1"}
	ok, err = svc.PuedeAccederGarantia(ctx, "ana", g)
	require.NoError(t, err)
	assert.True(t, ok, "la apoderada ve las garantías dirigidas a su fabricante")

	sinFabricante := &entity.Garantia{OwnerUserID: "carla"}
	ok, err = svc.PuedeAccederGarantia(ctx, "ana", sinFabricante)
	require.NoError(t, err)
	assert.False(t, ok, "sin fabricante solo el dueño alcanza")

	ok, err = svc.PuedeAccederGarantia(ctx, "carla", sinFabricante)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPredicados_EntradaNilNiega(t *testing.T) {
	svc, _, _, _, _ := servicio()
	ctx := context.Background()

	ok, err := svc.PuedeAccederMarca(ctx, "ana", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.PuedeAccederInventario(ctx, "ana", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.PuedeAccederRepresentante(ctx, "ana", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario: predicado de dos saltos
// ──────────────────────────────────────────────────────────────────────────────

func TestPuedeAccederInventario(t *testing.T) {
	svc, _, _, _, _ := servicio()
	ctx := context.Background()

	item := &entity.InventarioItem{ID: "item-1", OwnerUserID: "carla", ProductoID: "producto-1"}

	ok, err := svc.PuedeAccederInventario(ctx, "carla", item)
	require.NoError(t, err)
	assert.True(t, ok, "dueño directo, sin importar el fabricante")

	ok, err = svc.PuedeAccederInventario(ctx, "ana", item)
	require.NoError(t, err)
	assert.True(t, ok, "el producto referenciado pertenece a fab-1")

	ok, err = svc.PuedeAccederInventario(ctx, "bruno", item)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPuedeAccederInventario_ViaPieza(t *testing.T) {
	svc, _, _, _, _ := servicio()
	ctx := context.Background()

	item := &entity.InventarioItem{ID: "item-2", OwnerUserID: "carla", PiezaID: "pieza-1"}

	ok, err := svc.PuedeAccederInventario(ctx, "diego", item)
	require.NoError(t, err)
	assert.True(t, ok, "la pieza referenciada pertenece a fab-1")

	ok, err = svc.PuedeAccederInventario(ctx, "bruno", item)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Referencia intermedia irresoluble: se niega para todo el que no sea dueño.
func TestPuedeAccederInventario_ReferenciaRotaFailClosed(t *testing.T) {
	svc, _, _, _, _ := servicio()
	ctx := context.Background()

	roto := &entity.InventarioItem{ID: "item-roto", OwnerUserID: "carla", ProductoID: "producto-fantasma"}

	ok, err := svc.PuedeAccederInventario(ctx, "ana", roto)
	require.NoError(t, err)
	assert.False(t, ok, "referencia rota niega, no concede ni falla")

	ok, err = svc.PuedeAccederInventario(ctx, "carla", roto)
	require.NoError(t, err)
	assert.True(t, ok, "el dueño directo no depende de la referencia")

	sinReferencia := &entity.InventarioItem{ID: "item-vacio", OwnerUserID: "carla"}
	ok, err = svc.PuedeAccederInventario(ctx, "ana", sinReferencia)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Representante: predicado de dos saltos vía marcas
// ──────────────────────────────────────────────────────────────────────────────

func TestPuedeAccederRepresentante(t *testing.T) {
	svc, _, _, _, _ := servicio()
	ctx := context.Background()

	rep := &entity.Representante{ID: "rep-1", OwnerUserID: "carla", MarcaIDs: []string{"marca-1"}}

	ok, err := svc.PuedeAccederRepresentante(ctx, "ana", rep)
	require.NoError(t, err)
	assert.True(t, ok, "marca-1 pertenece a fab-1, alcance de ana")

	ok, err = svc.PuedeAccederRepresentante(ctx, "carla", rep)
	require.NoError(t, err)
	assert.True(t, ok, "dueña directa")

	ok, err = svc.PuedeAccederRepresentante(ctx, "bruno", rep)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Una marca sin fabricante no propaga acceso: su dueña no alcanza por ella a
// representantes ajenos.
func TestPuedeAccederRepresentante_MarcaSinFabricanteNoConcede(t *testing.T) {
	svc, _, _, _, _ := servicio()
	ctx := context.Background()

	rep := &entity.Representante{ID: "rep-2", OwnerUserID: "bruno", MarcaIDs: []string{"marca-suelta"}}

	ok, err := svc.PuedeAccederRepresentante(ctx, "carla", rep)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Basta una marca que conceda; las marcas rotas o ajenas no vetan.
func TestPuedeAccederRepresentante_DisyuncionSobreMarcas(t *testing.T) {
	svc, _, _, _, _ := servicio()
	ctx := context.Background()

	rep := &entity.Representante{
		ID:          "rep-3",
		OwnerUserID: "carla",
		MarcaIDs:    []string{"marca-fantasma", "marca-suelta", "marca-1"},
	}

	ok, err := svc.PuedeAccederRepresentante(ctx, "diego", rep)
	require.NoError(t, err)
	assert.True(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Equivalencia listado/detalle: el filtro de alcance acepta exactamente el
// mismo subconjunto que el predicado puntual, instancia a instancia.
// ──────────────────────────────────────────────────────────────────────────────

func cumpleAlcanceInventario(a repository.AlcanceInventario, i *entity.InventarioItem) bool {
	if a.OwnerUserID != "" && a.OwnerUserID == i.OwnerUserID {
		return true
	}
	for _, id := range a.ProductoIDs {
		if i.ProductoID != "" && id == i.ProductoID {
			return true
		}
	}
	for _, id := range a.PiezaIDs {
		if i.PiezaID != "" && id == i.PiezaID {
			return true
		}
	}
	return false
}

func TestAlcanceInventario_CoincideConPredicado(t *testing.T) {
	svc, _, _, _, _ := servicio()
	ctx := context.Background()

	items := []*entity.InventarioItem{
		{ID: "i1", OwnerUserID: "carla", ProductoID: "producto-1"},
		{ID: "i2", OwnerUserID: "carla", ProductoID: "producto-2"},
		{ID: "i3", OwnerUserID: "carla", PiezaID: "pieza-1"},
		{ID: "i4", OwnerUserID: "carla", PiezaID: "pieza-suelta"},
		{ID: "i5", OwnerUserID: "ana", PiezaID: "pieza-suelta"},
		{ID: "i6", OwnerUserID: "bruno", ProductoID: "producto-fantasma"},
		{ID: "i7", OwnerUserID: "diego"},
	}
	usuarios := []string{"ana", "bruno", "carla", "diego", "nadie"}

	for _, userID := range usuarios {
		alcance, err := svc.AlcanceInventario(ctx, userID)
		require.NoError(t, err)
		for _, item := range items {
			puede, err := svc.PuedeAccederInventario(ctx, userID, item)
			require.NoError(t, err)
			assert.Equal(t, puede, cumpleAlcanceInventario(alcance, item),
				"usuario %s, item %s: el listado y el detalle deben coincidir", userID, item.ID)
		}
	}
}

func cumpleAlcanceRepresentante(a repository.AlcanceRepresentante, r *entity.Representante) bool {
	if a.OwnerUserID != "" && a.OwnerUserID == r.OwnerUserID {
		return true
	}
	for _, id := range a.MarcaIDs {
		if r.Representa(id) {
			return true
		}
	}
	return false
}

func TestAlcanceRepresentante_CoincideConPredicado(t *testing.T) {
	svc, _, _, _, _ := servicio()
	ctx := context.Background()

	reps := []*entity.Representante{
		{ID: "r1", OwnerUserID: "carla", MarcaIDs: []string{"marca-1"}},
		{ID: "r2", OwnerUserID: "carla", MarcaIDs: []string{"marca-suelta"}},
		{ID: "r3", OwnerUserID: "bruno", MarcaIDs: []string{"marca-fantasma"}},
		{ID: "r4", OwnerUserID: "ana"},
	}
	usuarios := []string{"ana", "bruno", "carla", "diego", "nadie"}

	for _, userID := range usuarios {
		alcance, err := svc.AlcanceRepresentante(ctx, userID)
		require.NoError(t, err)
		for _, rep := range reps {
			puede, err := svc.PuedeAccederRepresentante(ctx, userID, rep)
			require.NoError(t, err)
			assert.Equal(t, puede, cumpleAlcanceRepresentante(alcance, rep),
				"usuario %s, representante %s: el listado y el detalle deben coincidir", userID, rep.ID)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados de escritura: fabricante suspendido
// ──────────────────────────────────────────────────────────────────────────────

// La suspensión de un fabricante congela la escritura concedida vía alcance de
// tenant sin tocar la lectura ni el camino del dueño directo.
func TestPuedeMutar_FabricanteSuspendido(t *testing.T) {
	svc, fabricantes, marcas, productos, _ := servicio()
	ctx := context.Background()

	// elena entra como delegada del fabricante suspendido fab-2.
	fabricantes.porID["fab-2"].Delegados = []string{"elena"}

	producto := productos.porID["producto-2"]

	ok, err := svc.PuedeAccederProducto(ctx, "elena", producto)
	require.NoError(t, err)
	assert.True(t, ok, "la lectura sigue concedida sobre el fabricante suspendido")

	ok, err = svc.PuedeMutarProducto(ctx, "elena", producto)
	require.NoError(t, err)
	assert.False(t, ok, "la escritura vía tenant queda congelada")

	ok, err = svc.PuedeMutarProducto(ctx, "bruno", producto)
	require.NoError(t, err)
	assert.True(t, ok, "el dueño directo no pasa por el alcance de tenant")

	ok, err = svc.PuedeMutarProducto(ctx, "diego", productos.porID["producto-1"])
	require.NoError(t, err)
	assert.True(t, ok, "fabricante habilitado concede escritura al delegado")

	marca2 := &entity.Marca{ID: "marca-2", OwnerUserID: "bruno", FabricanteID: "fab-2"}
	marcas.porID["marca-2"] = marca2

	ok, err = svc.PuedeMutarMarca(ctx, "elena", marca2)
	require.NoError(t, err)
	assert.False(t, ok)

	g := &entity.Garantia{ID: "g-1", OwnerUserID: "carla", FabricanteID: "fab-2"}

	ok, err = svc.PuedeAccederGarantia(ctx, "elena", g)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.PuedeMutarGarantia(ctx, "elena", g)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.PuedeMutarGarantia(ctx, "carla", g)
	require.NoError(t, err)
	assert.True(t, ok, "la solicitante dueña no queda bloqueada por la suspensión")
}

func TestPuedeMutar_DosSaltosFabricanteSuspendido(t *testing.T) {
	svc, fabricantes, marcas, _, _ := servicio()
	ctx := context.Background()

	fabricantes.porID["fab-2"].Delegados = []string{"elena"}

	item := &entity.InventarioItem{ID: "item-x", OwnerUserID: "carla", ProductoID: "producto-2"}

	ok, err := svc.PuedeAccederInventario(ctx, "elena", item)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.PuedeMutarInventario(ctx, "elena", item)
	require.NoError(t, err)
	assert.False(t, ok, "el salto por producto-2 no concede escritura estando fab-2 suspendido")

	ok, err = svc.PuedeMutarInventario(ctx, "carla", item)
	require.NoError(t, err)
	assert.True(t, ok, "dueña directa del bien")

	marcas.porID["marca-2"] = &entity.Marca{ID: "marca-2", OwnerUserID: "bruno", FabricanteID: "fab-2"}
	rep := &entity.Representante{ID: "rep-x", OwnerUserID: "nadie", MarcaIDs: []string{"marca-2"}}

	ok, err = svc.PuedeAccederRepresentante(ctx, "elena", rep)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.PuedeMutarRepresentante(ctx, "elena", rep)
	require.NoError(t, err)
	assert.False(t, ok)
}

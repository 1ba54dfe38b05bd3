package usecase_test

import (
	"context"

	"github.com/postventa/garantias-api/internal/application/usecase"
	"github.com/postventa/garantias-api/internal/domain/entity"
	"github.com/postventa/garantias-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Solo implementan lo que los
// casos de uso bajo prueba tocan; el resto queda en la interfaz embebida.

type fakeFabricanteRepo struct {
	repository.FabricanteRepository
	porID map[string]*entity.Fabricante
}

func (f *fakeFabricanteRepo) GetByID(_ context.Context, id string) (*entity.Fabricante, error) {
	return f.porID[id], nil
}

func (f *fakeFabricanteRepo) ListIDsPorAccesor(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for id, fab := range f.porID {
		if fab.EnAlcanceDe(userID) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeFabricanteRepo) ListIDsPorAccesorYEstado(_ context.Context, userID, estado string) ([]string, error) {
	var ids []string
	for id, fab := range f.porID {
		if fab.EnAlcanceDe(userID) && fab.Estado == estado {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeMarcaRepo struct {
	repository.MarcaRepository
	porID map[string]*entity.Marca
}

func (f *fakeMarcaRepo) Create(_ context.Context, m *entity.Marca) error {
	f.porID[m.ID] = m
	return nil
}

func (f *fakeMarcaRepo) GetByID(_ context.Context, id string) (*entity.Marca, error) {
	return f.porID[id], nil
}

func (f *fakeMarcaRepo) Update(_ context.Context, m *entity.Marca) error {
	f.porID[m.ID] = m
	return nil
}

func (f *fakeMarcaRepo) ListPorIDs(_ context.Context, ids []string) ([]*entity.Marca, error) {
	var out []*entity.Marca
	for _, id := range ids {
		if m, ok := f.porID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMarcaRepo) Delete(_ context.Context, id string) error {
	delete(f.porID, id)
	return nil
}

type fakeProductoRepo struct {
	repository.ProductoRepository
	porID         map[string]*entity.Producto
	marcasConHijo map[string]bool
}

func (f *fakeProductoRepo) GetByID(_ context.Context, id string) (*entity.Producto, error) {
	return f.porID[id], nil
}

func (f *fakeProductoRepo) ExistePorMarca(_ context.Context, marcaID string) (bool, error) {
	return f.marcasConHijo[marcaID], nil
}

type fakePiezaRepo struct {
	repository.PiezaRepository
	porID map[string]*entity.Pieza
}

func (f *fakePiezaRepo) GetByID(_ context.Context, id string) (*entity.Pieza, error) {
	return f.porID[id], nil
}

type fakeInventarioRepo struct {
	repository.InventarioRepository
	porID map[string]*entity.InventarioItem
}

func (f *fakeInventarioRepo) Create(_ context.Context, item *entity.InventarioItem) error {
	f.porID[item.ID] = item
	return nil
}

func (f *fakeInventarioRepo) GetByID(_ context.Context, id string) (*entity.InventarioItem, error) {
	return f.porID[id], nil
}

type fakeRepresentanteRepo struct {
	repository.RepresentanteRepository
	porID map[string]*entity.Representante
}

func (f *fakeRepresentanteRepo) GetByID(_ context.Context, id string) (*entity.Representante, error) {
	return f.porID[id], nil
}

func (f *fakeRepresentanteRepo) Update(_ context.Context, r *entity.Representante) error {
	f.porID[r.ID] = r
	return nil
}

type fakeGarantiaRepo struct {
	repository.GarantiaRepository
	porID map[string]*entity.Garantia
}

func (f *fakeGarantiaRepo) Create(_ context.Context, g *entity.Garantia) error {
	f.porID[g.ID] = g
	return nil
}

func (f *fakeGarantiaRepo) GetByID(_ context.Context, id string) (*entity.Garantia, error) {
	return f.porID[id], nil
}

func (f *fakeGarantiaRepo) Update(_ context.Context, g *entity.Garantia) error {
	f.porID[g.ID] = g
	return nil
}

func (f *fakeGarantiaRepo) ExistePorItem(_ context.Context, itemID string) (bool, error) {
	for _, g := range f.porID {
		if g.InventarioItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

// fakeTxRunner pasa los mismos fakes al callback; no hay transacción real.
type fakeTxRunner struct {
	garantias  repository.GarantiaRepository
	inventario repository.InventarioRepository
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	garantias repository.GarantiaRepository,
	inventario repository.InventarioRepository,
) error) error {
	return fn(f.garantias, f.inventario)
}

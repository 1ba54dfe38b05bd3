package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/postventa/garantias-api/internal/domain/entity"
)

func TestGarantia_TransicionValida(t *testing.T) {
	casos := []struct {
		desde  string
		hacia  string
		quiere bool
	}{
		{entity.GarantiaSolicitada, entity.GarantiaEnRevision, true},
		{entity.GarantiaSolicitada, entity.GarantiaRechazada, true},
		{entity.GarantiaSolicitada, entity.GarantiaAprobada, false},
		{entity.GarantiaSolicitada, entity.GarantiaCerrada, false},
		{entity.GarantiaEnRevision, entity.GarantiaAprobada, true},
		{entity.GarantiaEnRevision, entity.GarantiaRechazada, true},
		{entity.GarantiaEnRevision, entity.GarantiaSolicitada, false},
		{entity.GarantiaAprobada, entity.GarantiaCerrada, true},
		{entity.GarantiaAprobada, entity.GarantiaRechazada, false},
		{entity.GarantiaRechazada, entity.GarantiaCerrada, true},
		{entity.GarantiaCerrada, entity.GarantiaSolicitada, false},
		{entity.GarantiaCerrada, entity.GarantiaEnRevision, false},
	}
	for _, c := range casos {
		t.Run(c.desde+"→"+c.hacia, func(t *testing.T) {
			g := &entity.Garantia{Estado: c.desde}
			assert.Equal(t, c.quiere, g.TransicionValida(c.hacia))
		})
	}
}

func TestGarantia_TransicionValida_NilYEstadoDesconocido(t *testing.T) {
	var g *entity.Garantia
	assert.False(t, g.TransicionValida(entity.GarantiaEnRevision))

	raro := &entity.Garantia{Estado: "limbo"}
	assert.False(t, raro.TransicionValida(entity.GarantiaCerrada))
}

func TestGarantia_Resuelta(t *testing.T) {
	assert.False(t, (&entity.Garantia{Estado: entity.GarantiaSolicitada}).Resuelta())
	assert.False(t, (&entity.Garantia{Estado: entity.GarantiaEnRevision}).Resuelta())
	assert.True(t, (&entity.Garantia{Estado: entity.GarantiaAprobada}).Resuelta())
	assert.True(t, (&entity.Garantia{Estado: entity.GarantiaRechazada}).Resuelta())
	assert.True(t, (&entity.Garantia{Estado: entity.GarantiaCerrada}).Resuelta())
}

func TestInventarioItem_ReferenciaValida(t *testing.T) {
	assert.True(t, (&entity.InventarioItem{ProductoID: "p1"}).ReferenciaValida())
	assert.True(t, (&entity.InventarioItem{PiezaID: "z1"}).ReferenciaValida())
	assert.False(t, (&entity.InventarioItem{}).ReferenciaValida(), "sin referencia")
	assert.False(t, (&entity.InventarioItem{ProductoID: "p1", PiezaID: "z1"}).ReferenciaValida(), "ambas referencias")

	var nulo *entity.InventarioItem
	assert.False(t, nulo.ReferenciaValida())
}

func TestFabricante_EnAlcanceDe(t *testing.T) {
	f := &entity.Fabricante{
		ApoderadoID: "legal",
		Delegados:   []string{"deleg-1", "deleg-2"},
	}

	assert.True(t, f.EnAlcanceDe("legal"), "representante legal")
	assert.True(t, f.EnAlcanceDe("deleg-2"), "delegado")
	assert.False(t, f.EnAlcanceDe("otro"))
	assert.False(t, f.EnAlcanceDe(""), "usuario vacío jamás alcanza")

	var nulo *entity.Fabricante
	assert.False(t, nulo.EnAlcanceDe("legal"))
}

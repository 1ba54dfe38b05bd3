// Package pdf implementa la generación del certificado de garantía en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Fabricante  │  N° Certificado + Fecha emisión      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BIEN CUBIERTO: producto o pieza + serial + fecha compra    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECLAMO: descripción + estado + fechas                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda legal                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/postventa/garantias-api/internal/application/usecase"
	"github.com/postventa/garantias-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.CertificadoPDFGenerator = (*MarotoCertificadoGenerator)(nil)

// MarotoCertificadoGenerator implementa usecase.CertificadoPDFGenerator usando Maroto v2.
type MarotoCertificadoGenerator struct{}

// NewMarotoCertificadoGenerator construye el generador.
func NewMarotoCertificadoGenerator() *MarotoCertificadoGenerator { return &MarotoCertificadoGenerator{} }

// GenerarCertificado genera el PDF del certificado y devuelve sus bytes.
func (g *MarotoCertificadoGenerator) GenerarCertificado(
	_ context.Context,
	garantia *entity.Garantia,
	item *entity.InventarioItem,
	producto *entity.Producto,
	pieza *entity.Pieza,
	fabricante *entity.Fabricante,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Certificado de Garantía", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(garantia, fabricante))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(bienRow(item, producto, pieza))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(reclamoRows(garantia)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar certificado: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: fabricante (izq) y N° certificado + fecha (der).
func headerRow(garantia *entity.Garantia, fabricante *entity.Fabricante) core.Row {
	nombre := "Sin fabricante asociado"
	if fabricante != nil {
		nombre = fabricante.Nombre
	}
	fecha := garantia.FechaSolicitud.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Certificado de garantía", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CERTIFICADO N°", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(garantia.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Solicitud: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// bienRow: datos del bien cubierto, según referencie producto o pieza.
func bienRow(item *entity.InventarioItem, producto *entity.Producto, pieza *entity.Pieza) core.Row {
	descripcion := "—"
	cobertura := "—"
	switch {
	case producto != nil:
		descripcion = fmt.Sprintf("%s %s (SKU %s)", producto.Nombre, producto.Modelo, producto.SKU)
		if producto.MesesGarantia > 0 {
			cobertura = fmt.Sprintf("%d meses desde la fecha de compra", producto.MesesGarantia)
		}
	case pieza != nil:
		descripcion = fmt.Sprintf("%s (código %s)", pieza.Nombre, pieza.Codigo)
	}

	return row.New(20).Add(
		col.New(12).Add(
			text.New("BIEN CUBIERTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(descripcion, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Serial: %s   |   Compra: %s   |   Cobertura: %s",
				nonEmpty(item.Serial, "—"),
				item.FechaCompra.Format("02/01/2006"),
				cobertura,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// reclamoRows: descripción del defecto reclamado y estado de la garantía.
func reclamoRows(garantia *entity.Garantia) []core.Row {
	resolucion := "pendiente"
	if garantia.FechaResolucion != nil {
		resolucion = garantia.FechaResolucion.Format("02/01/2006")
	}
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("RECLAMO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New(garantia.Descripcion, props.Text{Size: 9, Top: 1, Left: 2}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Estado: %s   |   Resolución: %s",
				garantia.Estado, resolucion,
			), props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
		)),
	}
}

// footerRow: leyenda legal.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este certificado acredita la cobertura de garantía del bien identificado. "+
				"Consérvelo junto con el comprobante de compra.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

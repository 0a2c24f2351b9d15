// Package pdf dibuja los documentos del depósito con Maroto v2.
//
// Reporte de inventario (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Reporte de Inventario                                      │
//	│  Depósito + Fecha                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Cantidad (ordenada por SKU)        │
//	│  TOTAL unidades                                             │
//	└─────────────────────────────────────────────────────────────┘
//
// Comprobante de movimiento: cabecera con ID, fecha y destino, tabla
// SKU | Producto | Desde Depósito | Cantidad y bloque de firmas.
package pdf

import (
	"context"
	"fmt"
	"strconv"

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
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Deposito-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

const dateLayout = "02/01/2006 15:04"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador; author se graba en los metadatos.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// WarehouseReportPDF genera el reporte de inventario de un depósito.
func (g *MarotoReportGenerator) WarehouseReportPDF(_ context.Context, rep report.WarehouseReport) ([]byte, error) {
	m := maroto.New(g.config("Reporte de Inventario"))

	m.AddRows(titleRow("Reporte de Inventario", align.Left))
	m.AddRows(row.New(12).Add(
		col.New(12).Add(
			text.New("Depósito: "+rep.WarehouseName, props.Text{Size: 11, Top: 1}),
			text.New("Fecha: "+rep.GeneratedAt.Format(dateLayout), props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow([]headerCell{
		{"SKU", 3, align.Left},
		{"Producto", 7, align.Left},
		{"Cantidad", 2, align.Right},
	}))
	if len(rep.Lines) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin stock registrado en este depósito.", props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}
	for i, l := range rep.Lines {
		m.AddRows(stripe(i, row.New(7).Add(
			col.New(3).Add(cellText(l.SKU, align.Left)),
			col.New(7).Add(cellText(l.Name, align.Left)),
			col.New(2).Add(cellText(formatUnits(l.Quantity), align.Right)),
		)))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(rep.TotalUnits))

	return generate(m)
}

// TransferReceiptPDF genera el comprobante de un movimiento con bloque de firmas.
func (g *MarotoReportGenerator) TransferReceiptPDF(_ context.Context, rec report.TransferReceipt) ([]byte, error) {
	m := maroto.New(g.config("Comprobante de Movimiento de Stock"))

	m.AddRows(titleRow("Comprobante de Movimiento de Stock", align.Center))
	m.AddRows(row.New(14).Add(
		col.New(7).Add(
			text.New("ID de Movimiento: "+rec.TransferID, props.Text{Size: 8, Top: 1}),
			text.New("Fecha: "+rec.Date.Format(dateLayout), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Depósito de Destino: "+rec.DestinationName, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow([]headerCell{
		{"SKU", 2, align.Left},
		{"Producto", 5, align.Left},
		{"Desde Depósito", 3, align.Left},
		{"Cantidad", 2, align.Right},
	}))
	for i, l := range rec.Lines {
		m.AddRows(stripe(i, row.New(7).Add(
			col.New(2).Add(cellText(l.SKU, align.Left)),
			col.New(5).Add(cellText(l.Name, align.Left)),
			col.New(3).Add(cellText(l.SourceName, align.Left)),
			col.New(2).Add(cellText(formatUnits(l.Quantity), align.Right)),
		)))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(rec.TotalUnits))

	m.AddRows(row.New(25))
	m.AddRows(signatureRows()...)

	return generate(m)
}

func (g *MarotoReportGenerator) config(title string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(nonEmpty(g.author, "deposito-api"), true).
		Build()
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

type headerCell struct {
	label string
	size  int
	align align.Type
}

func titleRow(title string, a align.Type) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 16, Align: a, Color: colorPrimary, Top: 2}),
	))
}

// tableHeaderRow: cabecera de tabla con fondo de color primario.
func tableHeaderRow(cells []headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func cellText(s string, a align.Type) core.Component {
	return text.New(s, props.Text{Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1})
}

// stripe alterna el fondo de las filas pares.
func stripe(i int, r core.Row) core.Row {
	if i%2 == 1 {
		return r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

func totalRow(units int) core.Row {
	return row.New(8).Add(
		col.New(8),
		col.New(2).Add(text.New("Total unidades:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1.5,
		})),
		col.New(2).Add(text.New(formatUnits(units), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1.5, Right: 1,
		})),
	)
}

// signatureRows: "Entregado por" y "Recibido por" con línea de firma.
func signatureRows() []core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("______________________________", props.Text{Size: 9, Align: align.Center}),
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 6}),
			text.New("(Firma y Nombre)", props.Text{Size: 8, Align: align.Center, Top: 12, Color: colorGray}),
		)
	}
	return []core.Row{row.New(20).Add(sig("Entregado por:"), sig("Recibido por:"))}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatUnits inserta puntos de miles. Ej: 25000 → "25.000".
func formatUnits(n int) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}

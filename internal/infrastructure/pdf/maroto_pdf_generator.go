// Package pdf genera la versión imprimible de una estimación de cotización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Marca + slogan      │  "ESTIMATE" + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SOLICITUD: Producto / Ancho / Alto                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Área m2 | Cant. | Unitario                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RANGO: Low - High (moneda)                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Referencia + QR WhatsApp + Aviso                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/germatek-api/internal/application/usecase"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Disclaimer texto fijo bajo el rango; la estimación no es una oferta.
const Disclaimer = "This is an indicative estimate based on the dimensions provided. " +
	"Final pricing is confirmed after a site visit and may vary with finish, " +
	"access and installation conditions."

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.QuotePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.QuotePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now     func() time.Time
	printer *message.Printer
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{
		now:     time.Now,
		printer: message.NewPrinter(language.English),
	}
}

// WithClock fija el reloj (fecha impresa en el encabezado).
func (g *MarotoPDFGenerator) WithClock(now func() time.Time) *MarotoPDFGenerator {
	g.now = now
	return g
}

// GenerateQuotePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotePDF(_ context.Context, data usecase.QuotePDFData) ([]byte, error) {
	if data.Estimate == nil {
		return nil, fmt.Errorf("pdf: estimación vacía")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Quote estimate", true).
		WithAuthor(data.Brand.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Brand, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(requestRow(data.Request))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableDetailRow(data.Estimate))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.rangeRow(data.Estimate))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca + slogan (izq) y título + fecha (der).
func headerRow(brand entity.Brand, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(brand.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(brand.Slogan, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("QUOTE ESTIMATE", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Date: "+now.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New(brand.Coverage, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// requestRow: lo que pidió el cliente, tal como llegó.
func requestRow(req entity.QuoteRequest) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("REQUEST", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Product: %s   |   Width: %s m   |   Height: %s m",
				req.Product, req.Width.String(), req.Height.String(),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Product", 5, align.Left),
		h("Area (m2)", 2, align.Right),
		h("Qty", 2, align.Center),
		h("Unit estimate", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (g *MarotoPDFGenerator) tableDetailRow(est *entity.QuoteEstimate) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(
			est.ProductLabel,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			est.Area.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			est.Qty.String(),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			g.money(est.Currency, est.UnitEstimate),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// rangeRow: rango estimado alineado a la derecha.
func (g *MarotoPDFGenerator) rangeRow(est *entity.QuoteEstimate) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})
	}

	rangeText := g.money(est.Currency, est.Low) + " - " + g.money("", est.High)
	values := []core.Component{value(rangeText)}
	if est.MinJobApplied {
		values = append(values, text.New("Minimum job value applied", props.Text{
			Size: 7, Align: align.Right, Right: 1, Top: 9, Color: colorGray,
		}))
	}
	return row.New(16).Add(
		col.New(4),
		col.New(3).Add(label("ESTIMATED RANGE:")),
		col.New(5).Add(values...),
	)
}

// footerRows: referencia + QR de WhatsApp + aviso.
func footerRows(data usecase.QuotePDFData) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Reference: "+nonEmpty(data.ReferenceID, "-"), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(3),
	}

	if data.WhatsAppURL != "" {
		rows = append(rows, row.New(45).Add(
			col.New(4).Add(code.NewQr(data.WhatsAppURL, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Scan the QR code to continue\nthis quotation on WhatsApp.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New(contactLine(data.Brand), props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 20, Left: 3, Color: colorPrimary,
				}),
			),
		))
	}

	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New(Disclaimer, props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func contactLine(b entity.Brand) string {
	if b.Email == "" {
		return b.Name
	}
	return b.Name + "  |  " + b.Email
}

// money formatea un monto entero con separador de miles. Ej: "MUR 138,690".
func (g *MarotoPDFGenerator) money(currency string, d decimal.Decimal) string {
	s := g.printer.Sprintf("%d", d.Round(0).IntPart())
	if currency == "" {
		return s
	}
	return currency + " " + s
}

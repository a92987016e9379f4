// Package pdf implementa la representación gráfica del comprobante de pago.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Acueducto + N° Comprobante + Fecha    │
//	│  ───────────────────────────────────────────  │
//	│  SUSCRIPTOR: nombre + factura pagada           │
//	│  ───────────────────────────────────────────  │
//	│  DETALLE: Monto | Método | Referencia | Cajero │
//	│  ───────────────────────────────────────────  │
//	│  FOOTER: leyenda de conservación               │
//	└───────────────────────────────────────────────┘
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

	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa usecase.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	utilityName string
}

// NewMarotoReceiptGenerator construye el generador. utilityName aparece en el
// encabezado del comprobante.
func NewMarotoReceiptGenerator(utilityName string) *MarotoReceiptGenerator {
	if utilityName == "" {
		utilityName = "Acueducto Municipal"
	}
	return &MarotoReceiptGenerator{utilityName: utilityName}
}

// GenerateReceiptPDF genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	receipt *entity.Receipt,
	snapshot *entity.ReceiptSnapshot,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Pago "+receipt.ReceiptNo, true).
		WithAuthor(g.utilityName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(subscriberRow(snapshot))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRows(snapshot)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del acueducto (izq) y número + fecha del comprobante (der).
func (g *MarotoReceiptGenerator) headerRow(receipt *entity.Receipt) core.Row {
	fecha := receipt.IssuedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.utilityName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Servicio de acueducto", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(receipt.ReceiptNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// subscriberRow: suscriptor y factura cubierta por el pago.
func subscriberRow(snapshot *entity.ReceiptSnapshot) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SUSCRIPTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(snapshot.Customer, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Factura: "+snapshot.BillID, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// detailRows: monto pagado destacado y los datos de la transacción.
func detailRows(snapshot *entity.ReceiptSnapshot) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Left, Top: 1,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})
	}

	return []core.Row{
		row.New(12).Add(
			col.New(6).Add(text.New("MONTO PAGADO", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
			})),
			col.New(6).Add(text.New("$"+formatMoney(snapshot.AmountPaid), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right,
				Color: colorPrimary, Top: 2,
			})),
		),
		row.New(7).Add(
			col.New(6).Add(label("Método de pago:")),
			col.New(6).Add(value(snapshot.Method)),
		),
		row.New(7).Add(
			col.New(6).Add(label("Referencia:")),
			col.New(6).Add(value(snapshot.Reference)),
		),
		row.New(7).Add(
			col.New(6).Add(label("Atendido por:")),
			col.New(6).Add(value(snapshot.Cashier)),
		),
	}
}

// footerRow: leyenda de conservación.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este comprobante es el soporte de su pago. "+
				"Consérvelo para cualquier reclamación.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en la parte entera de un string numérico.
// Ej: "25000.00" → "25.000,00", "1000000" → "1.000.000"
func formatMoney(s string) string {
	intPart := s
	fracPart := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart = s[:i]
			fracPart = "," + s[i+1:]
			break
		}
	}
	n := len(intPart)
	if n <= 3 {
		return intPart + fracPart
	}
	buf := make([]byte, 0, n+n/3)
	lead := n % 3
	if lead > 0 {
		buf = append(buf, intPart[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(buf) > 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i:i+3]...)
	}
	return string(buf) + fracPart
}

// Package pdf genera el reporte A4 de ventas para NF-e con Maroto v2.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome fantasia + CNPJ  │  título + cantidad         │
//	│  EMITENTE: razão social / IE / IM / regime / endereço       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Venda | Data | Cliente | Fone | Cód | Desc | ...    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/export"
	"github.com/jhoicas/estoque-api/pkg/brl"
)

var _ export.PDFRenderer = (*MarotoSalesReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Índices dentro de export.Report.Issuer (mismo orden que export.IssuerFields).
const (
	issuerCNPJ = iota
	issuerLegalName
	issuerTradeName
	issuerIE
	issuerIM
	issuerTaxRegime
	issuerCEP
	issuerStreet
	issuerDistrict
	issuerCity
	issuerState
	issuerCountry
)

// Índices dentro de cada fila de export.Report.Sales.
const (
	saleID = iota
	saleDate
	saleClient
	_ // DestIE
	salePhone
	saleCode
	saleDescription
	_ // NCM
	_ // unidade
	saleQuantity
	saleUnitPrice
	saleTotal
)

// MarotoSalesReport implementa export.PDFRenderer usando Maroto v2.
type MarotoSalesReport struct{}

// NewMarotoSalesReport construye el generador.
func NewMarotoSalesReport() *MarotoSalesReport { return &MarotoSalesReport{} }

// RenderSalesReport genera el PDF y devuelve sus bytes.
func (g *MarotoSalesReport) RenderSalesReport(_ context.Context, report *export.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Vendas para NF-e", true).
		WithAuthor(report.Issuer[issuerTradeName], true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(issuerRow(report.Issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Sales)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(report.Sales))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *export.Report) core.Row {
	issuer := report.Issuer
	return row.New(16).Add(
		col.New(7).Add(
			text.New(issuer[issuerTradeName], props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+nonEmpty(issuer[issuerCNPJ], "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VENDAS PARA EMISSÃO DE NF-e", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d venda(s)", len(report.Sales)), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func issuerRow(issuer []string) core.Row {
	address := strings.Join(nonBlank(
		issuer[issuerStreet], issuer[issuerDistrict], issuer[issuerCity], issuer[issuerState],
		issuer[issuerCEP], issuer[issuerCountry],
	), ", ")
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EMITENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Razão social: %s   |   IE: %s   |   IM: %s   |   Regime: %s",
				nonEmpty(issuer[issuerLegalName], "—"),
				nonEmpty(issuer[issuerIE], "—"),
				nonEmpty(issuer[issuerIM], "—"),
				nonEmpty(issuer[issuerTaxRegime], "—"),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New("Endereço: "+nonEmpty(address, "—"), props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

// columns ancho (sobre 12) de cada columna de la tabla.
var columns = []struct {
	title string
	size  int
	align align.Type
}{
	{"Venda", 1, align.Center},
	{"Data", 1, align.Center},
	{"Cliente", 2, align.Left},
	{"Fone", 1, align.Left},
	{"Código", 1, align.Left},
	{"Descrição", 3, align.Left},
	{"Qtd.", 1, align.Center},
	{"Unit.", 1, align.Right},
	{"Total", 1, align.Right},
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(c.title, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableRows(sales [][]string) []core.Row {
	result := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		values := []string{
			s[saleID], s[saleDate], s[saleClient], s[salePhone], s[saleCode], s[saleDescription],
			s[saleQuantity], money(s[saleUnitPrice]), money(s[saleTotal]),
		}
		cols := make([]core.Col, 0, len(columns))
		for i, c := range columns {
			cols = append(cols, col.New(c.size).Add(text.New(values[i], props.Text{
				Size: 7, Align: c.align, Top: 1, Left: 1, Right: 1,
			})))
		}
		result = append(result, row.New(7).Add(cols...))
	}
	return result
}

func totalRow(sales [][]string) core.Row {
	total := decimal.Zero
	for _, s := range sales {
		if v, err := decimal.NewFromString(s[saleTotal]); err == nil {
			total = total.Add(v)
		}
	}
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(brl.Currency(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func nonBlank(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// money "89.90" → "R$ 89,90". Valores no numéricos se devuelven tal cual.
func money(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return brl.Currency(d)
}

package export

import (
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Valores fijos de los campos del destinatario y del producto.
const (
	DestIE      = "ISENTO"
	ProdNCM     = "00000000"
	ProdUnidade = "UN"
)

// IssuerFields columnas del emitente, en orden.
var IssuerFields = []string{
	"EmitCNPJ", "EmitRazaoSocial", "EmitNomeFantasia", "EmitIE", "EmitIM",
	"EmitRegimeTributario", "EmitCEP", "EmitRua", "EmitBairro", "EmitCidade", "EmitEstado", "EmitPais",
}

// SaleFields columnas de cada venta, en orden.
var SaleFields = []string{
	"VendaID", "DataEmissao", "DestNome", "DestIE", "DestFone",
	"ProdCodigo", "ProdDescricao", "ProdNCM", "ProdUnidade",
	"ProdQuantidade", "ProdValorUnitario", "ProdValorTotal",
}

// Header devuelve la cabecera completa (emitente + venta).
func Header() []string {
	h := make([]string, 0, len(IssuerFields)+len(SaleFields))
	h = append(h, IssuerFields...)
	return append(h, SaleFields...)
}

// Report datos ya convertidos a texto, comunes a los tres formatos.
// Issuer tiene len(IssuerFields) valores y cada fila de Sales len(SaleFields).
// Los valores nulos llegan como cadena vacía.
type Report struct {
	Issuer []string
	Sales  [][]string
}

// NewReport arma el reporte a partir de la empresa y de las filas de venta.
func NewReport(company *entity.Company, rows []repository.ExportRow) *Report {
	r := &Report{
		Issuer: []string{
			deref(company.CNPJ), deref(company.LegalName), company.TradeName,
			deref(company.StateRegistration), deref(company.MunicipalRegistration), deref(company.TaxRegime),
			company.CEP, company.Street, company.District, company.City, company.State, company.Country,
		},
		Sales: make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		r.Sales = append(r.Sales, []string{
			formatInt(row.SaleID), row.SaleDate, row.ClientName, DestIE, deref(row.ClientPhone),
			row.ProductCode, row.Description, ProdNCM, ProdUnidade,
			formatInt(int64(row.Quantity)), row.UnitPrice.StringFixed(2), row.Total.StringFixed(2),
		})
	}
	return r
}

// Records devuelve las filas planas: emitente repetido + venta.
func (r *Report) Records() [][]string {
	out := make([][]string, 0, len(r.Sales))
	for _, s := range r.Sales {
		rec := make([]string, 0, len(r.Issuer)+len(s))
		rec = append(rec, r.Issuer...)
		out = append(out, append(rec, s...))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

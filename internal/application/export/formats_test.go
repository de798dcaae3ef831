package export

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

func fixtureReport() *Report {
	company := &entity.Company{
		CNPJ:              strPtr("12.345.678/0001-95"),
		LegalName:         strPtr("Moda Maria LTDA"),
		TradeName:         "Moda Maria",
		StateRegistration: strPtr("123456789"),
		TaxRegime:         strPtr("Simples Nacional"),
		CEP:               "01001-000",
		Street:            "Rua Direita 10",
		District:          "Centro",
		City:              "São Paulo",
		State:             "SP",
		Country:           "Brasil",
	}
	rows := []repository.ExportRow{
		{
			SaleID: 7, SaleDate: "2025-10-01", ClientName: "Ana Lima", ClientPhone: strPtr("11 99999-0000"),
			ProductCode: "ABC1", Description: "Camisa Azul P M G", Quantity: 2,
			UnitPrice: decimal.NewFromInt(25), Total: decimal.NewFromInt(50),
		},
		{
			SaleID: 9, SaleDate: "2025-10-02", ClientName: "Beto; Souza",
			ProductCode: "K1", Description: "Calça Preta 38 40", Quantity: 1,
			UnitPrice: decimal.RequireFromString("89.9"), Total: decimal.RequireFromString("89.9"),
		},
	}
	return NewReport(company, rows)
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
}

func TestNewReport(t *testing.T) {
	r := fixtureReport()

	require.Len(t, r.Issuer, len(IssuerFields))
	assert.Equal(t, "", r.Issuer[4], "IM nulo se exporta vacío")
	require.Len(t, r.Sales, 2)
	assert.Len(t, r.Sales[0], len(SaleFields))
	assert.Equal(t, []string{"9", "2025-10-02", "Beto; Souza", DestIE, "", "K1", "Calça Preta 38 40", ProdNCM, ProdUnidade, "1", "89.90", "89.90"}, r.Sales[1])

	records := r.Records()
	require.Len(t, records, 2)
	assert.Len(t, records[0], len(Header()))
	assert.Equal(t, r.Issuer, records[1][:len(IssuerFields)], "emitente repetido en cada fila")
}

func TestEncodeCSV(t *testing.T) {
	out, err := EncodeCSV(fixtureReport())
	require.NoError(t, err)
	golden(t).Assert(t, "vendas_csv", out)
}

func TestEncodeXML(t *testing.T) {
	out, err := EncodeXML(fixtureReport())
	require.NoError(t, err)
	golden(t).Assert(t, "vendas_xml", out)
}

// Package export genera el archivo de ventas para la emisión de NF-e (CSV, XML o PDF)
// con los datos del emitente repetidos en cada venta.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Formatos soportados.
const (
	FormatCSV = "csv"
	FormatXML = "xml"
	FormatPDF = "pdf"
)

// FileBaseName nombre del archivo sin extensión.
const FileBaseName = "vendas_para_nfe"

// recentWindow ventana de la página de selección.
const recentWindow = 30 * 24 * time.Hour

var contentTypes = map[string]string{
	FormatCSV: "text/csv",
	FormatXML: "application/xml",
	FormatPDF: "application/pdf",
}

// File archivo generado, listo para enviar como adjunto.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UseCase exportación de ventas seleccionadas.
type UseCase struct {
	companyRepo repository.CompanyRepository
	saleRepo    repository.SaleRepository
	pdf         PDFRenderer
	now         func() time.Time
}

// NewUseCase construye el caso de uso. pdf puede ser nil: el formato pdf queda deshabilitado.
func NewUseCase(companyRepo repository.CompanyRepository, saleRepo repository.SaleRepository, pdf PDFRenderer) *UseCase {
	return &UseCase{companyRepo: companyRepo, saleRepo: saleRepo, pdf: pdf, now: time.Now}
}

// RecentSales lista las ventas de los últimos 30 días para elegir cuáles exportar.
func (uc *UseCase) RecentSales(ctx context.Context, userID int64) ([]dto.RecentSaleDTO, error) {
	since := uc.now().Add(-recentWindow).Format("2006-01-02")
	rows, err := uc.saleRepo.ListRecent(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("export: vendas recentes: %w", err)
	}
	out := make([]dto.RecentSaleDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RecentSaleDTO{ID: r.ID, SaleDate: r.SaleDate, ClientName: r.ClientName, Total: r.Total})
	}
	return out, nil
}

// Generate arma el archivo de las ventas seleccionadas en el formato pedido ("" = csv).
//
// Retorna:
//   - domain.ErrInvalidInput     sin ventas seleccionadas o formato desconocido.
//   - domain.ErrCompanyNotFound  si el dueño no registró su empresa.
//   - domain.ErrNotFound         si ninguna venta seleccionada le pertenece.
func (uc *UseCase) Generate(ctx context.Context, userID int64, saleIDs []int64, format string) (*File, error) {
	if len(saleIDs) == 0 {
		return nil, fmt.Errorf("%w: nenhuma venda selecionada", domain.ErrInvalidInput)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}
	contentType, ok := contentTypes[format]
	if !ok || (format == FormatPDF && uc.pdf == nil) {
		return nil, fmt.Errorf("%w: formato de exportação inválido", domain.ErrInvalidInput)
	}

	company, err := uc.companyRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("export: empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	rows, err := uc.saleRepo.ExportRows(ctx, userID, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("export: vendas: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: vendas selecionadas", domain.ErrNotFound)
	}

	report := NewReport(company, rows)
	var data []byte
	switch format {
	case FormatCSV:
		data, err = EncodeCSV(report)
	case FormatXML:
		data, err = EncodeXML(report)
	case FormatPDF:
		data, err = uc.pdf.RenderSalesReport(ctx, report)
	}
	if err != nil {
		return nil, err
	}

	return &File{
		Name:        FileBaseName + "." + format,
		ContentType: contentType,
		Data:        data,
	}, nil
}

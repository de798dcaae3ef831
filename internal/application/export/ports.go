package export

import "context"

// PDFRenderer genera la versión PDF del reporte de exportación.
// La implementación vive en infrastructure/pdf.
type PDFRenderer interface {
	RenderSalesReport(ctx context.Context, report *Report) ([]byte, error)
}

package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/export"
	"github.com/jhoicas/estoque-api/internal/domain"
)

const (
	exportPath  = "/exportar_vendas_nfe"
	companyPath = "/dados_empresa"
)

// ExportHandler selección y descarga del archivo para NF-e.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// RecentSales godoc
// @Summary      Ventas de los últimos 30 días
// @Tags         export
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RecentSaleDTO
// @Router       /exportar_vendas_nfe [get]
func (h *ExportHandler) RecentSales(c *fiber.Ctx) error {
	list, err := h.uc.RecentSales(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Generate godoc
// @Summary      Generar archivo para NF-e
// @Description  Adjunto vendas_para_nfe.<ext>. Sin datos de empresa redirige a /dados_empresa.
// @Tags         export
// @Security     Bearer
// @Accept       x-www-form-urlencoded
// @Produce      text/csv,application/xml,application/pdf
// @Param        venda_ids           formData  []int   true   "ids de venta"  collectionFormat(multi)
// @Param        formato_exportacao  formData  string  false  "csv | xml | pdf"
// @Success      200
// @Success      303
// @Router       /gerar_arquivo_nfe [post]
func (h *ExportHandler) Generate(c *fiber.Ctx) error {
	ids, err := formIDs(c, "venda_ids")
	if err != nil {
		return redirectWithError(c, exportPath, err)
	}
	file, err := h.uc.Generate(c.UserContext(), GetUserID(c), ids, c.FormValue("formato_exportacao"))
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return redirectWithError(c, companyPath, err)
		}
		return redirectWithError(c, exportPath, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment;filename="+file.Name)
	return c.Send(file.Data)
}

// formIDs lee un campo repetido del formulario (urlencoded o multipart) como lista de enteros.
func formIDs(c *fiber.Ctx, key string) ([]int64, error) {
	var values []string
	if form, err := c.MultipartForm(); err == nil {
		values = form.Value[key]
	} else {
		for _, raw := range c.Context().PostArgs().PeekMulti(key) {
			values = append(values, string(raw))
		}
	}

	ids := make([]int64, 0, len(values))
	for _, raw := range values {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: venda inválida %q", domain.ErrInvalidInput, raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

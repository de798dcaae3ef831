package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/checkout"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/pkg/brl"
)

// Rutas del painel de compras.
const (
	purchasePanelPath = "/painel_compras"
	cartField         = "dados_carrinho"
)

// SalesHandler painel de compras: revisión y cierre del carrito.
type SalesHandler struct {
	uc        *checkout.UseCase
	companyUC *usecase.CompanyUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *checkout.UseCase, companyUC *usecase.CompanyUseCase) *SalesHandler {
	return &SalesHandler{uc: uc, companyUC: companyUC}
}

// Panel godoc
// @Summary      Painel de compras
// @Description  Vendedor por defecto (nombre actual del dueño) y el sucesso/erro del último checkout.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PurchasePanelResponse
// @Router       /painel_compras [get]
func (h *SalesHandler) Panel(c *fiber.Ctx) error {
	profile, err := h.companyUC.Get(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.PurchasePanelResponse{DefaultSeller: profile.Name, Flash: flash(c)})
}

// Review godoc
// @Summary      Revisar carrito
// @Description  Decodifica dados_carrinho y devuelve el carrito con su total. No escribe nada.
// @Tags         sales
// @Security     Bearer
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        dados_carrinho  formData  string  true  "JSON {cliente, vendedor, itens[]}"
// @Success      200  {object}  dto.CartReviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /revisar_compra [post]
func (h *SalesHandler) Review(c *fiber.Ctx) error {
	out, err := checkout.Review(c.FormValue(cartField))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Finalizar compra
// @Description  Registra una venta por línea y baja el stock en una sola transacción.
// @Description  Responde 303 a /painel_compras con ?sucesso= o ?erro=.
// @Tags         sales
// @Security     Bearer
// @Accept       x-www-form-urlencoded
// @Param        dados_carrinho  formData  string  true  "JSON {cliente, vendedor, itens[]}"
// @Success      303
// @Router       /finalizar_compra [post]
func (h *SalesHandler) Checkout(c *fiber.Ctx) error {
	cart, err := checkout.ParseCart(c.FormValue(cartField))
	if err != nil {
		return redirectWithError(c, purchasePanelPath, err)
	}
	owner := checkout.Owner{ID: GetUserID(c), Name: GetUserName(c)}
	res, err := h.uc.Checkout(c.UserContext(), owner, *cart)
	if err != nil {
		return redirectWithError(c, purchasePanelPath, err)
	}

	msg := fmt.Sprintf("Compra finalizada: %d item(ns), total %s.", res.Applied, brl.Currency(res.Total))
	if len(res.SkippedCodes) > 0 {
		msg += " Produtos não encontrados: " + strings.Join(res.SkippedCodes, ", ") + "."
	}
	return redirectWithSuccess(c, purchasePanelPath, msg)
}

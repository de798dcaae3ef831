package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
)

// InventoryHandler estoque de roupas y buscadores de producto.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar estoque
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        ordenar_por  query  string  false  "columna (lista blanca)"
// @Param        ordem        query  string  false  "asc | desc"
// @Success      200  {array}   dto.ItemResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := bindQuery(c, &in); err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.List(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Cadastrar roupa
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "roupa"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener roupa
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar roupa
// @Description  Cambiar la cantidad reconcilia los vendidos; la fecha de entrada no se edita.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "id"
// @Param        body  body  dto.UpdateItemRequest  true  "roupa"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateItemRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search GET /buscar_produtos?query= : códigos con stock disponible.
func (h *InventoryHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := bindQuery(c, &in); err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.Search(c.UserContext(), GetUserID(c), in.Term)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Details GET /buscar_detalhes_produto?codigo= : null si no existe.
func (h *InventoryHandler) Details(c *fiber.Ctx) error {
	out, err := h.uc.Details(c.UserContext(), GetUserID(c), c.Query("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ByCode GET /buscar_produto_route?codigo= : la prenda completa o null.
func (h *InventoryHandler) ByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.UserContext(), GetUserID(c), c.Query("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

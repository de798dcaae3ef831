package http

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// internalMessage mensaje mostrado para errores no previstos (el detalle queda en el log).
const internalMessage = "erro interno, tente novamente"

// errorStatus traduce un error de dominio a status HTTP y código.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrCompanyNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrPasswordMismatch):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// userMessage texto para el usuario: los errores de dominio ya vienen en portugués.
func userMessage(err error) string {
	if status, _ := errorStatus(err); status == fiber.StatusInternalServerError {
		return internalMessage
	}
	return err.Error()
}

// writeError responde JSON con dto.ErrorResponse. Los errores no previstos se devuelven a Fiber:
// ErrorHandler escribe la respuesta genérica y RequestLogger registra la causa.
func writeError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		return err
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

// ErrorHandler es el fiber.Config.ErrorHandler de la aplicación.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: strings.ToUpper(strings.ReplaceAll(utils.StatusMessage(fe.Code), " ", "_")), Message: fe.Message})
	}
	status, code := errorStatus(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: userMessage(err)})
}

// redirectWithError vuelve a la página del formulario con ?erro=<mensaje> (303).
// El usuario solo ve internalMessage para errores no previstos; la causa va al log de la petición.
func redirectWithError(c *fiber.Ctx, path string, err error) error {
	if status, _ := errorStatus(err); status == fiber.StatusInternalServerError {
		logger.FromContext(c.UserContext(), logger.Nop()).Named("http").Error().
			Err(err).
			Str("path", c.Path()).
			Str("redirect", path).
			Msg("erro interno em formulário")
	}
	return c.Redirect(path+"?erro="+url.QueryEscape(userMessage(err)), fiber.StatusSeeOther)
}

// redirectWithSuccess vuelve a la página con ?sucesso=<mensaje> (303).
func redirectWithSuccess(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(path+"?sucesso="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

// flash lee el mensaje que dejó redirectWithError o redirectWithSuccess.
func flash(c *fiber.Ctx) dto.Flash {
	return dto.Flash{Success: c.Query("sucesso"), Error: c.Query("erro")}
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

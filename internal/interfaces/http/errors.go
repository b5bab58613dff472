package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/rs/zerolog"
)

// Mensajes de respuesta que los clientes existentes comparan literalmente.
const (
	msgInternal           = "Internal server error"
	msgInvalidBody        = "Invalid request body"
	msgEmailExists        = "Email address already exist"
	msgInvalidCredentials = "Invalid email or password"
	msgMissingToken       = "Missing bearer token"
	msgInvalidToken       = "Invalid or expired token"
	msgAdminRequired      = "Admin privileges required"
)

// GET usa "does not exist"; PUT/PATCH/DELETE usan "doesn't exist". Se conservan ambos textos.
func productNotFoundMsg(id string) string { return fmt.Sprintf("Product with id %s does not exist", id) }
func productMissingMsg(id string) string  { return fmt.Sprintf("Product with id %s doesn't exist", id) }
func productRemovedMsg(id string) string  { return fmt.Sprintf("Product with id %s is removed.", id) }

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

// inputErrorMsg texto para el cliente de un error domain.ErrInvalidInput ("name is required", ...).
func inputErrorMsg(err error) string {
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return msgInvalidBody
}

// internalError registra la causa y responde 500 sin exponer detalles del almacén.
func internalError(c *fiber.Ctx, err error) error {
	zerolog.Ctx(c.UserContext()).Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return errorJSON(c, fiber.StatusInternalServerError, msgInternal)
}

// ErrorHandler responde con {"error": ...} los errores que llegan a Fiber
// (ruta inexistente, método no permitido, pánicos capturados por recover).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return errorJSON(c, fe.Code, fe.Message)
	}
	return internalError(c, err)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
)

// respondError traduce errores de dominio al sobre uniforme con su código HTTP.
// Los handlers enrutan TODOS sus errores por aquí para que la taxonomía sea
// consistente en toda la API.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrRoleRequired),
		errors.Is(err, domain.ErrProtectedEntity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("error interno del servidor"))
	}
}

// parseForced interpreta el segmento :isForced de las rutas de borrado.
// Cualquier valor distinto de "true" se trata como borrado lógico.
func parseForced(c *fiber.Ctx) bool {
	return c.Params("isForced") == "true"
}

// removalBody cuerpo opcional de los borrados: el motivo de la baja.
type removalBody struct {
	Reason string `json:"reason"`
}

// parseRemovalReason extrae el motivo opcional del cuerpo del DELETE.
func parseRemovalReason(c *fiber.Ctx) *string {
	var body removalBody
	if err := c.BodyParser(&body); err != nil || body.Reason == "" {
		return nil
	}
	return &body.Reason
}

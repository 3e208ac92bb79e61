package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/application/usecase"
)

// SalesAdvisorHandler administra los asesores de ventas.
type SalesAdvisorHandler struct {
	uc *usecase.SalesAdvisorUseCase
}

// NewSalesAdvisorHandler construye el handler de asesores.
func NewSalesAdvisorHandler(uc *usecase.SalesAdvisorUseCase) *SalesAdvisorHandler {
	return &SalesAdvisorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear asesor de ventas
// @Tags         salesAdvisor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSalesAdvisorRequest  true  "name, email, imageUrl"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/salesAdvisor [post]
func (h *SalesAdvisorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesAdvisorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("name es requerido"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out, "asesor registrado"))
}

// List godoc
// @Summary      Listar asesores activos
// @Tags         salesAdvisor
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Router       /api/salesAdvisor [get]
func (h *SalesAdvisorHandler) List(c *fiber.Ctx) error {
	advisors, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(advisors, ""))
}

// Delete godoc
// @Summary      Eliminar asesor (lógico o forzado)
// @Tags         salesAdvisor
// @Produce      json
// @Security     BearerAuth
// @Param        id        path  string  true  "id del asesor"
// @Param        isForced  path  string  true  "true = borrado físico tras la baja lógica"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/salesAdvisor/{id}/{isForced} [delete]
func (h *SalesAdvisorHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id, parseForced(c), GetUserID(c), parseRemovalReason(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(nil, "asesor eliminado"))
}

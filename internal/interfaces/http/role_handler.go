package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/application/usecase"
)

// RoleHandler administra los roles de la aplicación.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler de roles.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear rol
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateRoleRequest  true  "nombre del rol"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
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
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out, "rol creado"))
}

// List godoc
// @Summary      Listar roles activos
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	roles, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(roles, ""))
}

// Delete godoc
// @Summary      Eliminar rol (lógico o forzado); MASTER está protegido
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id        path  string  true  "id del rol"
// @Param        isForced  path  string  true  "true = borrado físico tras la baja lógica"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/roles/{id}/{isForced} [delete]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id, parseForced(c), GetUserID(c), parseRemovalReason(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(nil, "rol eliminado"))
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obejashaundev/nissan-sales-server/internal/application/auth"
	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/application/usecase"
)

// UserHandler administra el catálogo de usuarios (alta vía extendida de signup,
// listado y baja).
type UserHandler struct {
	uc     *usecase.UserUseCase
	authUC *auth.AuthUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase, authUC *auth.AuthUseCase) *UserHandler {
	return &UserHandler{uc: uc, authUC: authUC}
}

// List godoc
// @Summary      Listar usuarios activos con su rol
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(users, ""))
}

// Create alta de usuario por un administrador: la variante extendida del
// registro, con perfil completo y rol. Devuelve solo el usuario creado, sin
// token de sesión.
//
// @Summary      Crear usuario (alta administrativa)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SignUpRequest  true  "perfil completo del usuario"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("email y password son requeridos"))
	}
	out, err := h.authUC.SignUp(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out.User, "usuario creado"))
}

// Delete godoc
// @Summary      Eliminar usuario (lógico o forzado)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id        path  string  true  "id del usuario"
// @Param        isForced  path  string  true  "true = borrado físico tras la baja lógica"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/users/{id}/{isForced} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id, parseForced(c), GetUserID(c), parseRemovalReason(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(nil, "usuario eliminado"))
}

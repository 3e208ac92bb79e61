package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obejashaundev/nissan-sales-server/internal/application/auth"
	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignUp godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignUpRequest  true  "email, password y perfil opcional"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("email y password son requeridos"))
	}
	out, err := h.uc.SignUp(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(out, "usuario registrado"))
}

// SignIn godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignInRequest  true  "email, password"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("email y password son requeridos"))
	}
	out, welcome, err := h.uc.SignIn(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success(out, welcome))
}

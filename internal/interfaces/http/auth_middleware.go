package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	"github.com/obejashaundev/nissan-sales-server/pkg/jwt"
)

// Locals keys para UserID y RoleName en Fiber.
const (
	LocalUserID   = "user_id"
	LocalRoleName = "role_name"
)

// roleResolver es el contrato mínimo que necesita el guard de usuario activo.
// Lo implementa *usecase.UserUseCase; el uso de interfaz evita el import circular.
type roleResolver interface {
	ResolveActiveRole(userID string) (string, error)
}

// AuthMiddleware valida el Bearer Token JWT y extrae el UserID a c.Locals.
// No toca la base de datos: la verificación es puramente criptográfica.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("token vacío"))
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("token inválido o expirado"))
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// ActiveUserMiddleware re-resuelve el usuario del token contra la base en CADA
// petición: el token solo porta el id, nunca el rol. Si el usuario fue
// eliminado o desactivado después de emitido el token, la sesión muere aquí.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
func ActiveUserMiddleware(resolver roleResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("user_id no encontrado en el token"))
		}
		roleName, err := resolver.ResolveActiveRole(userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("usuario no encontrado"))
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Error("no se pudo verificar el usuario, intente más tarde"))
		}
		c.Locals(LocalRoleName, roleName)
		return c.Next()
	}
}

// RequireAdmin exige rol MASTER o ADMINISTRADOR. Predicado puro sobre el rol
// ya resuelto; no toca la base. Debe ir DESPUÉS de ActiveUserMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !entity.IsAdminTier(GetRoleName(c)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Error("se requiere rol de administrador"))
		}
		return c.Next()
	}
}

// RequireMaster exige rol MASTER. Debe ir DESPUÉS de ActiveUserMiddleware.
func RequireMaster() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !entity.IsMasterTier(GetRoleName(c)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Error("se requiere rol MASTER"))
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRoleName devuelve el nombre de rol del contexto (después del guard de
// usuario activo). Vacío si el usuario no tiene rol asignado.
func GetRoleName(c *fiber.Ctx) string {
	v := c.Locals(LocalRoleName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

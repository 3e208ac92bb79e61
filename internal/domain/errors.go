package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	// ErrInvalidCredentials se usa tanto para email inexistente como para password
	// incorrecta: el mensaje debe ser indistinguible para no revelar qué emails existen.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrRoleRequired       = errors.New("el rol indicado no existe")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	// ErrProtectedEntity protege roles y usuarios del nivel MASTER contra borrado.
	ErrProtectedEntity = errors.New("entidad protegida: no puede eliminarse")
)

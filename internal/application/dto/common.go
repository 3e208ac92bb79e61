package dto

import (
	"time"

	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
)

// Estados del sobre JSON uniforme de la API.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response es el sobre uniforme de TODAS las respuestas de la API:
// {status: "success"|"error", data: <any|null>, message: <string|null>}.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data"`
	Message any    `json:"message"`
}

// Success construye un sobre de éxito; message vacío se serializa como null.
func Success(data any, message string) Response {
	var msg any
	if message != "" {
		msg = message
	}
	return Response{Status: StatusSuccess, Data: data, Message: msg}
}

// Error construye un sobre de error con data null.
func Error(message string) Response {
	return Response{Status: StatusError, Message: message}
}

// LifecycleResponse sobre de ciclo de vida común a todas las entidades.
type LifecycleResponse struct {
	IsActive       bool       `json:"isActive"`
	IsRemoved      bool       `json:"isRemoved"`
	RemovalDate    *time.Time `json:"removalDate"`
	RemovalReason  *string    `json:"removalReason"`
	UserWhoRemoved *string    `json:"userWhoRemoved"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// NewLifecycleResponse proyecta el sobre de ciclo de vida de una entidad.
func NewLifecycleResponse(l entity.Lifecycle) LifecycleResponse {
	return LifecycleResponse{
		IsActive:       l.IsActive,
		IsRemoved:      l.IsRemoved,
		RemovalDate:    l.RemovalDate,
		RemovalReason:  l.RemovalReason,
		UserWhoRemoved: l.UserWhoRemoved,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

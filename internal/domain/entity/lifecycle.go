package entity

import "time"

// Lifecycle es el sobre de auditoría/borrado lógico común a todas las entidades
// persistidas. Un "delete" nunca borra directamente: primero marca
// IsActive=false, IsRemoved=true y solo una eliminación forzada destruye el registro.
type Lifecycle struct {
	IsActive       bool
	IsRemoved      bool
	RemovalDate    *time.Time
	RemovalReason  *string
	UserWhoRemoved *string // id del usuario que ejecutó el borrado
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewLifecycle devuelve el sobre inicial de una entidad recién creada.
func NewLifecycle() Lifecycle {
	now := time.Now()
	return Lifecycle{
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SoftDelete marca la entidad como eliminada lógicamente. Es idempotente:
// si ya estaba eliminada no modifica nada y devuelve false.
func (l *Lifecycle) SoftDelete(byUserID string, reason *string) bool {
	if l.IsRemoved {
		return false
	}
	now := time.Now()
	l.IsActive = false
	l.IsRemoved = true
	l.RemovalDate = &now
	l.RemovalReason = reason
	if byUserID != "" {
		l.UserWhoRemoved = &byUserID
	}
	l.UpdatedAt = now
	return true
}

// Touch actualiza UpdatedAt tras una modificación.
func (l *Lifecycle) Touch() {
	l.UpdatedAt = time.Now()
}

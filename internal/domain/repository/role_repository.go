package repository

import "github.com/obejashaundev/nissan-sales-server/internal/domain/entity"

// RoleRepository puerto de persistencia de roles.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	// GetActiveByName busca un rol activo por nombre exacto.
	GetActiveByName(name string) (*entity.Role, error)
	ListActive() ([]*entity.Role, error)
	Update(role *entity.Role) error
	HardDelete(id string) error
}

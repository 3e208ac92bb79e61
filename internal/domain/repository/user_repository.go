package repository

import "github.com/obejashaundev/nissan-sales-server/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByIDWithRole resuelve el usuario junto con el nombre de su rol (join explícito).
	GetByIDWithRole(id string) (*entity.UserWithRole, error)
	ListActiveWithRole() ([]*entity.UserWithRole, error)
	Update(user *entity.User) error
	HardDelete(id string) error
}

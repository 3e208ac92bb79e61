package repository

import "github.com/obejashaundev/nissan-sales-server/internal/domain/entity"

// SalesAdvisorRepository puerto de persistencia de asesores de ventas.
type SalesAdvisorRepository interface {
	Create(advisor *entity.SalesAdvisor) error
	GetByID(id string) (*entity.SalesAdvisor, error)
	ListActive() ([]*entity.SalesAdvisor, error)
	Update(advisor *entity.SalesAdvisor) error
	HardDelete(id string) error
}

package repository

import "github.com/obejashaundev/nissan-sales-server/internal/domain/entity"

// CustomerRepository puerto de persistencia de prospectos.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// ListActiveExpanded devuelve los prospectos activos con sus referencias
	// (location, carModel, advertisingMedium, salesAdvisor) resueltas por join.
	ListActiveExpanded() ([]*entity.CustomerExpanded, error)
	Update(customer *entity.Customer) error
	HardDelete(id string) error
}

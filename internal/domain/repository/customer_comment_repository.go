package repository

import "github.com/obejashaundev/nissan-sales-server/internal/domain/entity"

// CustomerCommentRepository puerto de persistencia de notas sobre prospectos.
type CustomerCommentRepository interface {
	Create(comment *entity.CustomerComment) error
	GetByID(id string) (*entity.CustomerComment, error)
	ListActiveByCustomer(customerID string) ([]*entity.CustomerComment, error)
	Update(comment *entity.CustomerComment) error
	HardDelete(id string) error
}

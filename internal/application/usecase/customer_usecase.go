package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/repository"
)

// CustomerUseCase casos de uso de prospectos de venta.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create valida las referencias obligatorias (location, advertisingMedium,
// salesAdvisor) y el nombre, y persiste el prospecto.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.Location == "" ||
		in.AdvertisingMedium == "" || in.SalesAdvisor == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:                  uuid.New().String(),
		Name:                strings.TrimSpace(in.Name),
		Phone:               in.Phone,
		Date:                in.Date,
		LocationID:          in.Location,
		AdvertisingMediumID: in.AdvertisingMedium,
		SalesAdvisorID:      in.SalesAdvisor,
		Lifecycle:           entity.NewLifecycle(),
	}
	if in.CarModel != "" {
		customer.CarModelID = &in.CarModel
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	resp := dto.NewCustomerResponse(customer)
	return &resp, nil
}

// List devuelve los prospectos activos con sus referencias expandidas.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListActiveExpanded()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.NewCustomerExpandedResponse(c))
	}
	return items, nil
}

// ListExpanded devuelve los prospectos activos con referencias resueltas,
// en la forma de entidad (para el reporte PDF).
func (uc *CustomerUseCase) ListExpanded() ([]*entity.CustomerExpanded, error) {
	return uc.repo.ListActiveExpanded()
}

// Delete borra lógicamente un prospecto y, si forced, lo destruye físicamente.
func (uc *CustomerUseCase) Delete(id string, forced bool, byUserID string, reason *string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if customer.SoftDelete(byUserID, reason) {
		if err := uc.repo.Update(customer); err != nil {
			return err
		}
	}
	if forced {
		return uc.repo.HardDelete(id)
	}
	return nil
}

package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/repository"
)

// SalesAdvisorUseCase casos de uso de asesores de ventas.
type SalesAdvisorUseCase struct {
	repo repository.SalesAdvisorRepository
}

// NewSalesAdvisorUseCase construye el caso de uso.
func NewSalesAdvisorUseCase(repo repository.SalesAdvisorRepository) *SalesAdvisorUseCase {
	return &SalesAdvisorUseCase{repo: repo}
}

// Create crea un asesor de ventas.
func (uc *SalesAdvisorUseCase) Create(in dto.CreateSalesAdvisorRequest) (*dto.SalesAdvisorResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	advisor := &entity.SalesAdvisor{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Email:     in.Email,
		ImageURL:  in.ImageURL,
		Lifecycle: entity.NewLifecycle(),
	}
	if err := uc.repo.Create(advisor); err != nil {
		return nil, err
	}
	resp := dto.NewSalesAdvisorResponse(advisor)
	return &resp, nil
}

// List devuelve los asesores activos.
func (uc *SalesAdvisorUseCase) List() ([]dto.SalesAdvisorResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalesAdvisorResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.NewSalesAdvisorResponse(a))
	}
	return items, nil
}

// Delete borra lógicamente un asesor y, si forced, lo destruye físicamente.
func (uc *SalesAdvisorUseCase) Delete(id string, forced bool, byUserID string, reason *string) error {
	advisor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if advisor == nil {
		return domain.ErrNotFound
	}
	if advisor.SoftDelete(byUserID, reason) {
		if err := uc.repo.Update(advisor); err != nil {
			return err
		}
	}
	if forced {
		return uc.repo.HardDelete(id)
	}
	return nil
}

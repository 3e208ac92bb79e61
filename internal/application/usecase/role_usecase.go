package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/repository"
)

// RoleUseCase casos de uso de roles.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un rol nuevo con el sobre de ciclo de vida por defecto.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	role := &entity.Role{
		ID:        uuid.New().String(),
		Name:      name,
		Lifecycle: entity.NewLifecycle(),
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	resp := dto.NewRoleResponse(role)
	return &resp, nil
}

// List devuelve los roles activos.
func (uc *RoleUseCase) List() ([]dto.RoleResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.NewRoleResponse(r))
	}
	return items, nil
}

// Delete borra lógicamente un rol y, si forced, lo destruye físicamente.
// El rol MASTER está protegido: ningún camino de borrado puede tocarlo.
func (uc *RoleUseCase) Delete(id string, forced bool, byUserID string, reason *string) error {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	if entity.IsMasterTier(role.Name) {
		return domain.ErrProtectedEntity
	}
	if role.SoftDelete(byUserID, reason) {
		if err := uc.repo.Update(role); err != nil {
			return err
		}
	}
	if forced {
		return uc.repo.HardDelete(id)
	}
	return nil
}

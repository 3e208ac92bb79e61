package usecase

import (
	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/repository"
)

// UserUseCase casos de uso de usuarios: listado, resolución para el guard de
// autenticación y borrado con protección MASTER.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ResolveActiveRole resuelve el usuario del token junto con el nombre de su rol.
// Es el segundo guard de la cadena: falla con ErrUserNotFound si el usuario no
// existe o ya no está activo. roleName queda vacío si el usuario no tiene rol;
// eso solo es un problema si después viene un guard de rol.
func (uc *UserUseCase) ResolveActiveRole(userID string) (string, error) {
	u, err := uc.repo.GetByIDWithRole(userID)
	if err != nil {
		return "", err
	}
	if u == nil || u.IsRemoved || !u.IsActive {
		return "", domain.ErrUserNotFound
	}
	return u.RoleName, nil
}

// List devuelve los usuarios activos con el nombre de rol resuelto.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.ListActiveWithRole()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.NewUserResponse(&u.User, u.RoleName))
	}
	return items, nil
}

// Delete borra lógicamente un usuario y, si forced, lo destruye físicamente.
// Un usuario cuyo rol es MASTER nunca puede borrarse, ni siquiera forzado.
// Repetir el soft delete sobre un usuario ya eliminado es un no-op exitoso.
func (uc *UserUseCase) Delete(id string, forced bool, byUserID string, reason *string) error {
	u, err := uc.repo.GetByIDWithRole(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	if entity.IsMasterTier(u.RoleName) {
		return domain.ErrProtectedEntity
	}
	if u.SoftDelete(byUserID, reason) {
		if err := uc.repo.Update(&u.User); err != nil {
			return err
		}
	}
	if forced {
		return uc.repo.HardDelete(id)
	}
	return nil
}

package dto

import "github.com/obejashaundev/nissan-sales-server/internal/domain/entity"

// CreateRoleRequest alta de un rol.
type CreateRoleRequest struct {
	Name string `json:"name"`
}

// RoleResponse rol con su sobre de ciclo de vida.
type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	LifecycleResponse
}

// NewRoleResponse proyecta un rol.
func NewRoleResponse(r *entity.Role) RoleResponse {
	return RoleResponse{
		ID:                r.ID,
		Name:              r.Name,
		LifecycleResponse: NewLifecycleResponse(r.Lifecycle),
	}
}

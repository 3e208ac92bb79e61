package dto

import "github.com/obejashaundev/nissan-sales-server/internal/domain/entity"

// UserResponse usuario sin credenciales, con el nombre de rol resuelto.
type UserResponse struct {
	ID             string  `json:"id"`
	Rol            *string `json:"rol"` // id del rol, null si no tiene
	RoleName       string  `json:"roleName,omitempty"`
	Names          string  `json:"names"`
	FirstLastname  string  `json:"firstLastname"`
	SecondLastname string  `json:"secondLastname"`
	Phone          string  `json:"phone"`
	PhotoPath      string  `json:"photoPath"`
	Email          string  `json:"email"`
	LifecycleResponse
}

// NewUserResponse proyecta un usuario; roleName puede ser vacío.
func NewUserResponse(u *entity.User, roleName string) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Rol:               u.RoleID,
		RoleName:          roleName,
		Names:             u.Names,
		FirstLastname:     u.FirstLastname,
		SecondLastname:    u.SecondLastname,
		Phone:             u.Phone,
		PhotoPath:         u.PhotoPath,
		Email:             u.Email,
		LifecycleResponse: NewLifecycleResponse(u.Lifecycle),
	}
}

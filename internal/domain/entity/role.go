package entity

// Nombres de rol con privilegios elevados.
const (
	// RoleMaster es el nivel más alto; roles y usuarios MASTER están
	// protegidos contra cualquier borrado.
	RoleMaster = "MASTER"
	// RoleAdministrador es el nivel administrativo estándar.
	RoleAdministrador = "ADMINISTRADOR"
)

// Role es un nivel de permisos con nombre ("Rol" en el modelo original).
type Role struct {
	ID   string
	Name string
	Lifecycle
}

// IsAdminTier indica si el nombre de rol alcanza nivel administrador o superior.
func IsAdminTier(roleName string) bool {
	return roleName == RoleMaster || roleName == RoleAdministrador
}

// IsMasterTier indica si el nombre de rol es exactamente el nivel MASTER.
func IsMasterTier(roleName string) bool {
	return roleName == RoleMaster
}

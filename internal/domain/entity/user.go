package entity

// User representa un usuario del staff de la concesionaria.
type User struct {
	ID             string
	RoleID         *string // referencia opcional a Role
	Names          string
	FirstLastname  string
	SecondLastname string
	Phone          string
	PhotoPath      string // URL del avatar en el servicio de imágenes
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Lifecycle
}

// UserWithRole resultado del join explícito User + Role; RoleName queda vacío
// cuando el usuario no tiene rol asignado.
type UserWithRole struct {
	User
	RoleName string
}

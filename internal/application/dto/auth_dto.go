package dto

// SignUpRequest registro de usuario. Email y password son obligatorios; el resto
// es el perfil opcional de la variante extendida (alta por un administrador).
type SignUpRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Names          string `json:"names"`
	FirstLastname  string `json:"firstLastname"`
	SecondLastname string `json:"secondLastname"`
	Phone          string `json:"phone"`
	RoleName       string `json:"rol"`   // nombre de rol existente; vacío = sin rol
	Photo          string `json:"photo"` // avatar en base64, opcional
}

// SignUpData respuesta de registro: usuario creado + token de sesión.
type SignUpData struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SignInRequest credenciales de inicio de sesión.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInData respuesta de inicio de sesión.
type SignInData struct {
	Token string `json:"token"`
}

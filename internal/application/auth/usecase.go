package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/repository"
	"github.com/obejashaundev/nissan-sales-server/pkg/jwt"
)

// ImageUploader puerto de salida hacia el servicio externo de imágenes.
// data es el contenido del avatar en base64; devuelve la URL pública resultante.
type ImageUploader interface {
	Upload(ctx context.Context, name, data string) (string, error)
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro e inicio de sesión.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	uploader   ImageUploader // puede ser nil: avatar deshabilitado
	jwtCfg     JWTConfig
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth. bcryptCost <= 0 usa el default de la librería.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, uploader ImageUploader, jwtCfg JWTConfig, bcryptCost int) *AuthUseCase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		uploader:   uploader,
		jwtCfg:     jwtCfg,
		bcryptCost: bcryptCost,
	}
}

// SignUp registra un usuario: valida duplicado de email, resuelve el rol por
// nombre si viene indicado, hashea la password, sube el avatar si viene y
// persiste. Devuelve el usuario creado y un token de sesión.
//
// El índice único sobre users(email) cubre la ventana entre la consulta de
// existencia y el insert: dos registros concurrentes con el mismo email no
// pueden crear dos filas (el repo traduce la violación a ErrEmailAlreadyExists).
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.SignUpData, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	var roleID *string
	roleName := ""
	if in.RoleName != "" {
		role, err := uc.roleRepo.GetActiveByName(in.RoleName)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrRoleRequired
		}
		roleID = &role.ID
		roleName = role.Name
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}

	photoPath := ""
	if in.Photo != "" && uc.uploader != nil {
		url, err := uc.uploader.Upload(ctx, "avatar-"+in.Email, in.Photo)
		if err != nil {
			return nil, fmt.Errorf("subir avatar: %w", err)
		}
		photoPath = url
	}

	user := &entity.User{
		ID:             uuid.New().String(),
		RoleID:         roleID,
		Names:          in.Names,
		FirstLastname:  in.FirstLastname,
		SecondLastname: in.SecondLastname,
		Phone:          in.Phone,
		PhotoPath:      photoPath,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Lifecycle:      entity.NewLifecycle(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SignUpData{
		Token: token,
		User:  dto.NewUserResponse(user, roleName),
	}, nil
}

// SignIn verifica email/password y genera el token de sesión. Email inexistente
// y password incorrecta devuelven EXACTAMENTE el mismo error para que un
// atacante no pueda enumerar qué emails están registrados.
// El segundo valor es el mensaje de bienvenida para el sobre de respuesta.
func (uc *AuthUseCase) SignIn(in dto.SignInRequest) (*dto.SignInData, string, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || user.IsRemoved {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	return &dto.SignInData{Token: token}, welcomeMessage(user), nil
}

func welcomeMessage(u *entity.User) string {
	name := strings.TrimSpace(u.Names + " " + u.FirstLastname)
	if name == "" {
		name = u.Email
	}
	return "Bienvenido(a) " + name
}

package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/application/usecase"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
)

func seededRole(id, name string) *entity.Role {
	return &entity.Role{ID: id, Name: name, Lifecycle: entity.NewLifecycle()}
}

func TestRoleDelete_SoftDelete(t *testing.T) {
	repo := newFakeRoleRepo(seededRole("rol-1", "VENDEDOR"))
	uc := usecase.NewRoleUseCase(repo)

	err := uc.Delete("rol-1", false, "admin-1", nil)

	require.NoError(t, err)
	role := repo.roles["rol-1"]
	require.NotNil(t, role, "sin forced el registro sigue existiendo")
	assert.False(t, role.IsActive)
	assert.True(t, role.IsRemoved)
	require.NotNil(t, role.UserWhoRemoved)
	assert.Equal(t, "admin-1", *role.UserWhoRemoved)
	assert.Zero(t, repo.hardDeletes)
}

// Repetir el soft delete sobre un rol ya eliminado es éxito sin cambios.
func TestRoleDelete_Idempotente(t *testing.T) {
	repo := newFakeRoleRepo(seededRole("rol-1", "VENDEDOR"))
	uc := usecase.NewRoleUseCase(repo)

	require.NoError(t, uc.Delete("rol-1", false, "admin-1", nil))
	after := *repo.roles["rol-1"]

	require.NoError(t, uc.Delete("rol-1", false, "admin-2", nil))
	assert.Equal(t, after, *repo.roles["rol-1"], "el estado debe quedar igual que tras el primer borrado")
}

// Forced implica primero el marcado lógico y después la eliminación física.
func TestRoleDelete_Forzado_EliminaFisicamente(t *testing.T) {
	repo := newFakeRoleRepo(seededRole("rol-1", "VENDEDOR"))
	uc := usecase.NewRoleUseCase(repo)

	require.NoError(t, uc.Delete("rol-1", true, "admin-1", nil))

	assert.Nil(t, repo.roles["rol-1"])
	assert.Equal(t, 1, repo.hardDeletes)
}

// El rol MASTER nunca puede borrarse, con o sin forced.
func TestRoleDelete_MasterProtegido(t *testing.T) {
	repo := newFakeRoleRepo(seededRole("rol-m", entity.RoleMaster))
	uc := usecase.NewRoleUseCase(repo)

	assert.ErrorIs(t, uc.Delete("rol-m", false, "admin-1", nil), domain.ErrProtectedEntity)
	assert.ErrorIs(t, uc.Delete("rol-m", true, "admin-1", nil), domain.ErrProtectedEntity)

	role := repo.roles["rol-m"]
	require.NotNil(t, role, "el rol MASTER debe seguir presente")
	assert.True(t, role.IsActive)
	assert.False(t, role.IsRemoved)
}

func TestRoleDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewRoleUseCase(newFakeRoleRepo())
	assert.ErrorIs(t, uc.Delete("no-existe", false, "admin-1", nil), domain.ErrNotFound)
}

func TestRoleCreate_NombreVacio_RetornaInvalidInput(t *testing.T) {
	uc := usecase.NewRoleUseCase(newFakeRoleRepo())
	_, err := uc.Create(dto.CreateRoleRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRoleList_ExcluyeEliminados(t *testing.T) {
	active := seededRole("rol-1", "VENDEDOR")
	removed := seededRole("rol-2", "RECEPCION")
	removed.SoftDelete("admin-1", nil)
	uc := usecase.NewRoleUseCase(newFakeRoleRepo(active, removed))

	list, err := uc.List()

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "VENDEDOR", list[0].Name)
}

package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
)

func TestNewLifecycle_EstadoInicial(t *testing.T) {
	l := entity.NewLifecycle()

	assert.True(t, l.IsActive, "una entidad nueva debe estar activa")
	assert.False(t, l.IsRemoved)
	assert.Nil(t, l.RemovalDate)
	assert.Nil(t, l.RemovalReason)
	assert.Nil(t, l.UserWhoRemoved)
	assert.WithinDuration(t, time.Now(), l.CreatedAt, time.Second)
	assert.Equal(t, l.CreatedAt, l.UpdatedAt)
}

func TestSoftDelete_MarcaYRegistraAuditoria(t *testing.T) {
	l := entity.NewLifecycle()
	reason := "duplicado"

	changed := l.SoftDelete("user-1", &reason)

	require.True(t, changed)
	assert.False(t, l.IsActive)
	assert.True(t, l.IsRemoved)
	require.NotNil(t, l.RemovalDate)
	require.NotNil(t, l.UserWhoRemoved)
	assert.Equal(t, "user-1", *l.UserWhoRemoved)
	assert.Equal(t, "duplicado", *l.RemovalReason)
}

// Repetir un soft delete sobre una entidad ya eliminada es un no-op.
func TestSoftDelete_Idempotente(t *testing.T) {
	l := entity.NewLifecycle()
	require.True(t, l.SoftDelete("user-1", nil))

	before := l
	changed := l.SoftDelete("user-2", nil)

	assert.False(t, changed, "el segundo soft delete no debe reportar cambios")
	assert.Equal(t, before, l, "el estado debe quedar igual que tras el primer borrado")
}

func TestSoftDelete_SinUsuarioNiMotivo(t *testing.T) {
	l := entity.NewLifecycle()
	require.True(t, l.SoftDelete("", nil))

	assert.Nil(t, l.UserWhoRemoved)
	assert.Nil(t, l.RemovalReason)
	assert.True(t, l.IsRemoved)
}

package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obejashaundev/nissan-sales-server/internal/application/usecase"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
)

func TestBulkCreate_InsertaValidasYReportaDescartadas(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := usecase.NewCatalogUseCase(repo)

	out, err := uc.BulkCreate(entity.CatalogLocation, []string{"Norte", "", "  ", "Sur"})

	require.NoError(t, err)
	assert.Len(t, out.Created, 2)
	assert.Equal(t, 2, out.Skipped, "las entradas con nombre vacío se descartan pero se reportan")
}

func TestBulkCreate_TodasInvalidas_RetornaError(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeCatalogRepo())
	_, err := uc.BulkCreate(entity.CatalogCarModel, []string{"", "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Tras crear dos ubicaciones el listado crece exactamente en 2 y contiene ambas.
func TestBulkCreate_MembresiaEnListado(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := usecase.NewCatalogUseCase(repo)

	before, err := uc.List(entity.CatalogLocation)
	require.NoError(t, err)

	_, err = uc.BulkCreate(entity.CatalogLocation, []string{"A", "B"})
	require.NoError(t, err)

	after, err := uc.List(entity.CatalogLocation)
	require.NoError(t, err)
	assert.Equal(t, len(before)+2, len(after))

	names := make([]string, 0, len(after))
	for _, it := range after {
		names = append(names, it.Name)
	}
	assert.Contains(t, names, "A")
	assert.Contains(t, names, "B")
}

func TestCatalogList_SoloActivasDelMismoCatalogo(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := usecase.NewCatalogUseCase(repo)
	_, err := uc.BulkCreate(entity.CatalogLocation, []string{"Norte"})
	require.NoError(t, err)
	_, err = uc.BulkCreate(entity.CatalogCarModel, []string{"Versa"})
	require.NoError(t, err)

	locations, err := uc.List(entity.CatalogLocation)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Norte", locations[0].Name)

	// Eliminada lógicamente ya no aparece
	require.NoError(t, uc.Delete(entity.CatalogLocation, locations[0].ID, false, "admin-1", nil))
	locations, err = uc.List(entity.CatalogLocation)
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestCatalogDelete_IdempotenteYForzado(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := usecase.NewCatalogUseCase(repo)
	out, err := uc.BulkCreate(entity.CatalogAdvertisingMedium, []string{"Radio"})
	require.NoError(t, err)
	id := out.Created[0].ID

	require.NoError(t, uc.Delete(entity.CatalogAdvertisingMedium, id, false, "admin-1", nil))
	require.NoError(t, uc.Delete(entity.CatalogAdvertisingMedium, id, false, "admin-1", nil), "repetir el soft delete es éxito")

	require.NoError(t, uc.Delete(entity.CatalogAdvertisingMedium, id, true, "admin-1", nil))
	assert.Equal(t, 1, repo.hardDeletes)

	err = uc.Delete(entity.CatalogAdvertisingMedium, id, false, "admin-1", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound, "tras el borrado físico ya no existe")
}

package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/application/usecase"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
)

func validCustomerRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:              "Juan Pérez",
		Phone:             "8112345678",
		Location:          "loc-1",
		AdvertisingMedium: "adv-1",
		SalesAdvisor:      "sa-1",
	}
}

func TestCustomerCreate_Valido(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	out, err := uc.Create(validCustomerRequest())

	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", out.Name)
	assert.Nil(t, out.CarModel, "carModel es opcional y no fue enviado")
	assert.True(t, out.IsActive)
}

func TestCustomerCreate_ReferenciasObligatorias(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	cases := map[string]func(*dto.CreateCustomerRequest){
		"sin name":              func(r *dto.CreateCustomerRequest) { r.Name = "" },
		"sin location":          func(r *dto.CreateCustomerRequest) { r.Location = "" },
		"sin advertisingMedium": func(r *dto.CreateCustomerRequest) { r.AdvertisingMedium = "" },
		"sin salesAdvisor":      func(r *dto.CreateCustomerRequest) { r.SalesAdvisor = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validCustomerRequest()
			mutate(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCustomerCreate_ConCarModelOpcional(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())
	in := validCustomerRequest()
	in.CarModel = "cm-1"

	out, err := uc.Create(in)

	require.NoError(t, err)
	require.NotNil(t, out.CarModel)
	assert.Equal(t, "cm-1", out.CarModel.ID)
}

func TestCustomerDelete_SoftLuegoForzado(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)
	out, err := uc.Create(validCustomerRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID, false, "admin-1", nil))
	c := repo.customers[out.ID]
	require.NotNil(t, c)
	assert.True(t, c.IsRemoved)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list, "un prospecto eliminado no aparece en el listado activo")

	require.NoError(t, uc.Delete(out.ID, true, "admin-1", nil))
	assert.Nil(t, repo.customers[out.ID])
}

package dto

import "github.com/obejashaundev/nissan-sales-server/internal/domain/entity"

// CreateSalesAdvisorRequest alta de un asesor de ventas.
type CreateSalesAdvisorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
}

// SalesAdvisorResponse asesor de ventas.
type SalesAdvisorResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
	LifecycleResponse
}

// NewSalesAdvisorResponse proyecta un asesor.
func NewSalesAdvisorResponse(a *entity.SalesAdvisor) SalesAdvisorResponse {
	return SalesAdvisorResponse{
		ID:                a.ID,
		Name:              a.Name,
		Email:             a.Email,
		ImageURL:          a.ImageURL,
		LifecycleResponse: NewLifecycleResponse(a.Lifecycle),
	}
}

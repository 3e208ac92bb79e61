package dto

import (
	"time"

	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
)

// CreateCustomerRequest alta de un prospecto. location, advertisingMedium y
// salesAdvisor son referencias obligatorias; carModel y date son opcionales.
type CreateCustomerRequest struct {
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Date              *time.Time `json:"date"`
	Location          string     `json:"location"`
	CarModel          string     `json:"carModel"`
	AdvertisingMedium string     `json:"advertisingMedium"`
	SalesAdvisor      string     `json:"salesAdvisor"`
}

// NamedRef referencia expandida: id + nombre resuelto.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// CustomerResponse prospecto con referencias expandidas.
type CustomerResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Date              *time.Time `json:"date"`
	Location          NamedRef   `json:"location"`
	CarModel          *NamedRef  `json:"carModel"`
	AdvertisingMedium NamedRef   `json:"advertisingMedium"`
	SalesAdvisor      NamedRef   `json:"salesAdvisor"`
	LifecycleResponse
}

// NewCustomerResponse proyecta un prospecto sin expansión de nombres.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return newCustomerResponse(c, "", "", "", "")
}

// NewCustomerExpandedResponse proyecta un prospecto con los nombres resueltos por el join.
func NewCustomerExpandedResponse(c *entity.CustomerExpanded) CustomerResponse {
	return newCustomerResponse(&c.Customer,
		c.LocationName, c.CarModelName, c.AdvertisingMediumName, c.SalesAdvisorName)
}

func newCustomerResponse(c *entity.Customer, locName, carName, mediumName, advisorName string) CustomerResponse {
	resp := CustomerResponse{
		ID:                c.ID,
		Name:              c.Name,
		Phone:             c.Phone,
		Date:              c.Date,
		Location:          NamedRef{ID: c.LocationID, Name: locName},
		AdvertisingMedium: NamedRef{ID: c.AdvertisingMediumID, Name: mediumName},
		SalesAdvisor:      NamedRef{ID: c.SalesAdvisorID, Name: advisorName},
		LifecycleResponse: NewLifecycleResponse(c.Lifecycle),
	}
	if c.CarModelID != nil {
		resp.CarModel = &NamedRef{ID: *c.CarModelID, Name: carName}
	}
	return resp
}

// CreateCommentRequest alta de una nota sobre un prospecto; el autor sale del token.
type CreateCommentRequest struct {
	Comment string `json:"comment"`
}

// CommentResponse nota sobre un prospecto.
type CommentResponse struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Author   string `json:"salesAdvisor"` // id del usuario autor (nombre de campo del modelo original)
	Comment  string `json:"comment"`
	LifecycleResponse
}

// NewCommentResponse proyecta una nota.
func NewCommentResponse(cm *entity.CustomerComment) CommentResponse {
	return CommentResponse{
		ID:                cm.ID,
		Customer:          cm.CustomerID,
		Author:            cm.AuthorID,
		Comment:           cm.Comment,
		LifecycleResponse: NewLifecycleResponse(cm.Lifecycle),
	}
}

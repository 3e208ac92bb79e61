package entity

import "time"

// Customer es un prospecto de venta (lead).
type Customer struct {
	ID                  string
	Name                string
	Phone               string
	Date                *time.Time // fecha de visita, opcional
	LocationID          string
	CarModelID          *string // opcional
	AdvertisingMediumID string
	SalesAdvisorID      string
	Lifecycle
}

// CustomerExpanded es el prospecto con sus referencias resueltas por join
// explícito en la capa de datos (nada de carga perezosa).
type CustomerExpanded struct {
	Customer
	LocationName          string
	CarModelName          string
	AdvertisingMediumName string
	SalesAdvisorName      string
}

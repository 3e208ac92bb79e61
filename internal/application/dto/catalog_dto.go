package dto

import "github.com/obejashaundev/nissan-sales-server/internal/domain/entity"

// NamedItemRequest entrada mínima de un catálogo: solo el nombre.
type NamedItemRequest struct {
	Name string `json:"name"`
}

// CreateCatalogRequest cuerpo de alta de catálogo: acepta un objeto único {name}
// o una colección bajo la clave plural de la entidad (locations, carModels,
// advertisingMediums). La clave plural tiene prioridad si viene poblada.
type CreateCatalogRequest struct {
	Name               string             `json:"name"`
	Locations          []NamedItemRequest `json:"locations"`
	CarModels          []NamedItemRequest `json:"carModels"`
	AdvertisingMediums []NamedItemRequest `json:"advertisingMediums"`
}

// Names aplana el cuerpo a la lista de nombres solicitados para el catálogo dado.
func (r CreateCatalogRequest) Names(kind entity.CatalogKind) []string {
	var items []NamedItemRequest
	switch kind {
	case entity.CatalogLocation:
		items = r.Locations
	case entity.CatalogCarModel:
		items = r.CarModels
	case entity.CatalogAdvertisingMedium:
		items = r.AdvertisingMediums
	}
	if len(items) == 0 {
		return []string{r.Name}
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}

// CatalogItemResponse entrada de catálogo con su sobre de ciclo de vida.
type CatalogItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	LifecycleResponse
}

// NewCatalogItemResponse proyecta una entrada de catálogo.
func NewCatalogItemResponse(it *entity.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:                it.ID,
		Name:              it.Name,
		LifecycleResponse: NewLifecycleResponse(it.Lifecycle),
	}
}

// BulkCreateData resultado del alta masiva: entradas creadas y cuántas se
// descartaron por inválidas (nombre vacío).
type BulkCreateData struct {
	Created []CatalogItemResponse `json:"created"`
	Skipped int                   `json:"skipped"`
}

package repository

import "github.com/obejashaundev/nissan-sales-server/internal/domain/entity"

// CatalogRepository puerto de persistencia para los catálogos de referencia
// (Location, CarModel, AdvertisingMedium), parametrizado por CatalogKind.
type CatalogRepository interface {
	Create(item *entity.CatalogItem) error
	GetByID(kind entity.CatalogKind, id string) (*entity.CatalogItem, error)
	ListActive(kind entity.CatalogKind) ([]*entity.CatalogItem, error)
	Update(item *entity.CatalogItem) error
	HardDelete(kind entity.CatalogKind, id string) error
}

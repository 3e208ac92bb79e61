package entity

// Kind identifica los catálogos de referencia que comparten la misma forma
// (nombre + sobre de ciclo de vida) y se usan para clasificar prospectos.
type CatalogKind string

const (
	CatalogLocation          CatalogKind = "location"
	CatalogCarModel          CatalogKind = "car_model"
	CatalogAdvertisingMedium CatalogKind = "advertising_medium"
)

// CatalogItem entrada de un catálogo de referencia (Location, CarModel, AdvertisingMedium).
type CatalogItem struct {
	ID   string
	Kind CatalogKind
	Name string
	Lifecycle
}

package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/obejashaundev/nissan-sales-server/internal/application/dto"
	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/repository"
)

// CatalogUseCase casos de uso genéricos de los catálogos de referencia
// (Location, CarModel, AdvertisingMedium), parametrizados por CatalogKind.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// BulkCreate inserta las entradas válidas y reporta cuántas se descartaron.
// Una entrada es inválida si su nombre queda vacío tras recortar espacios; las
// inválidas no detienen el alta de las demás, pero el conteo se devuelve al
// llamador en lugar de descartarse en silencio.
func (uc *CatalogUseCase) BulkCreate(kind entity.CatalogKind, names []string) (*dto.BulkCreateData, error) {
	out := &dto.BulkCreateData{Created: []dto.CatalogItemResponse{}}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			out.Skipped++
			continue
		}
		item := &entity.CatalogItem{
			ID:        uuid.New().String(),
			Kind:      kind,
			Name:      name,
			Lifecycle: entity.NewLifecycle(),
		}
		if err := uc.repo.Create(item); err != nil {
			return nil, err
		}
		out.Created = append(out.Created, dto.NewCatalogItemResponse(item))
	}
	if len(out.Created) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return out, nil
}

// List devuelve las entradas activas del catálogo (isActive=true, isRemoved=false).
func (uc *CatalogUseCase) List(kind entity.CatalogKind) ([]dto.CatalogItemResponse, error) {
	list, err := uc.repo.ListActive(kind)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.NewCatalogItemResponse(it))
	}
	return items, nil
}

// Delete borra lógicamente una entrada y, si forced, la destruye físicamente.
func (uc *CatalogUseCase) Delete(kind entity.CatalogKind, id string, forced bool, byUserID string, reason *string) error {
	item, err := uc.repo.GetByID(kind, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.SoftDelete(byUserID, reason) {
		if err := uc.repo.Update(item); err != nil {
			return err
		}
	}
	if forced {
		return uc.repo.HardDelete(kind, id)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL.
// Los tres catálogos comparten la tabla catalog_items discriminada por kind.
type CatalogRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository construye el adaptador de persistencia para catálogos.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

const catalogColumns = `id, kind, name, is_active, is_removed, removal_date, removal_reason, user_who_removed, created_at, updated_at`

func scanCatalogItem(row pgx.Row) (*entity.CatalogItem, error) {
	var it entity.CatalogItem
	err := row.Scan(
		&it.ID, &it.Kind, &it.Name, &it.IsActive, &it.IsRemoved,
		&it.RemovalDate, &it.RemovalReason, &it.UserWhoRemoved,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

// Create persiste una entrada de catálogo.
func (r *CatalogRepo) Create(item *entity.CatalogItem) error {
	query := `
		INSERT INTO catalog_items (id, kind, name, is_active, is_removed, removal_date, removal_reason, user_who_removed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Kind, item.Name, item.IsActive, item.IsRemoved,
		item.RemovalDate, item.RemovalReason, item.UserWhoRemoved,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert catalog item: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID dentro de un catálogo.
func (r *CatalogRepo) GetByID(kind entity.CatalogKind, id string) (*entity.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items WHERE kind = $1 AND id = $2`
	it, err := scanCatalogItem(r.pool.QueryRow(context.Background(), query, kind, id))
	if err != nil {
		return nil, fmt.Errorf("get catalog item: %w", err)
	}
	return it, nil
}

// ListActive lista las entradas activas de un catálogo.
func (r *CatalogRepo) ListActive(kind entity.CatalogKind) ([]*entity.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items
		WHERE kind = $1 AND is_active AND NOT is_removed ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query, kind)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogItem
	for rows.Next() {
		it, err := scanCatalogItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Update actualiza una entrada (incluido su sobre de ciclo de vida).
func (r *CatalogRepo) Update(item *entity.CatalogItem) error {
	query := `
		UPDATE catalog_items SET name = $2, is_active = $3, is_removed = $4,
			removal_date = $5, removal_reason = $6, user_who_removed = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Name, item.IsActive, item.IsRemoved,
		item.RemovalDate, item.RemovalReason, item.UserWhoRemoved, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update catalog item: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente una entrada de un catálogo.
func (r *CatalogRepo) HardDelete(kind entity.CatalogKind, id string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM catalog_items WHERE kind = $1 AND id = $2`, kind, id)
	if err != nil {
		return fmt.Errorf("delete catalog item: %w", err)
	}
	return nil
}

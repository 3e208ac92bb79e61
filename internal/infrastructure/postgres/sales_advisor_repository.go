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

var _ repository.SalesAdvisorRepository = (*SalesAdvisorRepo)(nil)

// SalesAdvisorRepo implementación del puerto SalesAdvisorRepository sobre PostgreSQL.
type SalesAdvisorRepo struct {
	pool *pgxpool.Pool
}

// NewSalesAdvisorRepository construye el adaptador de persistencia para asesores.
func NewSalesAdvisorRepository(pool *pgxpool.Pool) *SalesAdvisorRepo {
	return &SalesAdvisorRepo{pool: pool}
}

const advisorColumns = `id, name, email, image_url, is_active, is_removed, removal_date, removal_reason, user_who_removed, created_at, updated_at`

func scanAdvisor(row pgx.Row) (*entity.SalesAdvisor, error) {
	var a entity.SalesAdvisor
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.ImageURL, &a.IsActive, &a.IsRemoved,
		&a.RemovalDate, &a.RemovalReason, &a.UserWhoRemoved,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Create persiste un asesor nuevo.
func (r *SalesAdvisorRepo) Create(advisor *entity.SalesAdvisor) error {
	query := `
		INSERT INTO sales_advisors (id, name, email, image_url, is_active, is_removed, removal_date, removal_reason, user_who_removed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		advisor.ID, advisor.Name, advisor.Email, advisor.ImageURL,
		advisor.IsActive, advisor.IsRemoved,
		advisor.RemovalDate, advisor.RemovalReason, advisor.UserWhoRemoved,
		advisor.CreatedAt, advisor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales advisor: %w", err)
	}
	return nil
}

// GetByID obtiene un asesor por ID.
func (r *SalesAdvisorRepo) GetByID(id string) (*entity.SalesAdvisor, error) {
	query := `SELECT ` + advisorColumns + ` FROM sales_advisors WHERE id = $1`
	a, err := scanAdvisor(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get sales advisor: %w", err)
	}
	return a, nil
}

// ListActive lista los asesores activos.
func (r *SalesAdvisorRepo) ListActive() ([]*entity.SalesAdvisor, error) {
	query := `SELECT ` + advisorColumns + ` FROM sales_advisors
		WHERE is_active AND NOT is_removed ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sales advisors: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesAdvisor
	for rows.Next() {
		a, err := scanAdvisor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales advisor: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update actualiza un asesor (incluido su sobre de ciclo de vida).
func (r *SalesAdvisorRepo) Update(advisor *entity.SalesAdvisor) error {
	query := `
		UPDATE sales_advisors SET name = $2, email = $3, image_url = $4,
			is_active = $5, is_removed = $6, removal_date = $7, removal_reason = $8,
			user_who_removed = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		advisor.ID, advisor.Name, advisor.Email, advisor.ImageURL,
		advisor.IsActive, advisor.IsRemoved, advisor.RemovalDate, advisor.RemovalReason,
		advisor.UserWhoRemoved, advisor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales advisor: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente un asesor por ID.
func (r *SalesAdvisorRepo) HardDelete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM sales_advisors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sales advisor: %w", err)
	}
	return nil
}

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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

const roleColumns = `id, name, is_active, is_removed, removal_date, removal_reason, user_who_removed, created_at, updated_at`

func scanRole(row pgx.Row) (*entity.Role, error) {
	var r entity.Role
	err := row.Scan(
		&r.ID, &r.Name, &r.IsActive, &r.IsRemoved,
		&r.RemovalDate, &r.RemovalReason, &r.UserWhoRemoved,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// Create persiste un nuevo rol.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, is_active, is_removed, removal_date, removal_reason, user_who_removed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		role.ID, role.Name, role.IsActive, role.IsRemoved,
		role.RemovalDate, role.RemovalReason, role.UserWhoRemoved,
		role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1`
	role, err := scanRole(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get role by id: %w", err)
	}
	return role, nil
}

// GetActiveByName obtiene un rol activo por nombre exacto.
func (r *RoleRepo) GetActiveByName(name string) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles
		WHERE name = $1 AND is_active AND NOT is_removed LIMIT 1`
	role, err := scanRole(r.pool.QueryRow(context.Background(), query, name))
	if err != nil {
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return role, nil
}

// ListActive lista los roles activos.
func (r *RoleRepo) ListActive() ([]*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles
		WHERE is_active AND NOT is_removed ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, role)
	}
	return list, rows.Err()
}

// Update actualiza un rol (incluido su sobre de ciclo de vida).
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, is_active = $3, is_removed = $4,
			removal_date = $5, removal_reason = $6, user_who_removed = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		role.ID, role.Name, role.IsActive, role.IsRemoved,
		role.RemovalDate, role.RemovalReason, role.UserWhoRemoved, role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente un rol por ID.
func (r *RoleRepo) HardDelete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

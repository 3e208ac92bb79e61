package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obejashaundev/nissan-sales-server/internal/domain"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `u.id, u.role_id, u.names, u.first_lastname, u.second_lastname,
	u.phone, u.photo_path, u.email, u.password_hash,
	u.is_active, u.is_removed, u.removal_date, u.removal_reason, u.user_who_removed,
	u.created_at, u.updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.RoleID, &u.Names, &u.FirstLastname, &u.SecondLastname,
		&u.Phone, &u.PhotoPath, &u.Email, &u.PasswordHash,
		&u.IsActive, &u.IsRemoved, &u.RemovalDate, &u.RemovalReason, &u.UserWhoRemoved,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. Una violación del índice único de email se
// traduce a domain.ErrEmailAlreadyExists (cierra la carrera de registro duplicado).
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, role_id, names, first_lastname, second_lastname,
			phone, photo_path, email, password_hash,
			is_active, is_removed, removal_date, removal_reason, user_who_removed,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.RoleID, user.Names, user.FirstLastname, user.SecondLastname,
		user.Phone, user.PhotoPath, user.Email, user.PasswordHash,
		user.IsActive, user.IsRemoved, user.RemovalDate, user.RemovalReason, user.UserWhoRemoved,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.email = $1 LIMIT 1`
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, email))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetByIDWithRole obtiene un usuario junto con el nombre de su rol (join explícito;
// roleName vacío cuando no tiene rol asignado).
func (r *UserRepo) GetByIDWithRole(id string) (*entity.UserWithRole, error) {
	query := `SELECT ` + userColumns + `, COALESCE(ro.name, '')
		FROM users u LEFT JOIN roles ro ON ro.id = u.role_id
		WHERE u.id = $1`
	var u entity.UserWithRole
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.RoleID, &u.Names, &u.FirstLastname, &u.SecondLastname,
		&u.Phone, &u.PhotoPath, &u.Email, &u.PasswordHash,
		&u.IsActive, &u.IsRemoved, &u.RemovalDate, &u.RemovalReason, &u.UserWhoRemoved,
		&u.CreatedAt, &u.UpdatedAt, &u.RoleName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user with role: %w", err)
	}
	return &u, nil
}

// ListActiveWithRole lista los usuarios activos con el nombre de rol resuelto.
func (r *UserRepo) ListActiveWithRole() ([]*entity.UserWithRole, error) {
	query := `SELECT ` + userColumns + `, COALESCE(ro.name, '')
		FROM users u LEFT JOIN roles ro ON ro.id = u.role_id
		WHERE u.is_active AND NOT u.is_removed ORDER BY u.created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.UserWithRole
	for rows.Next() {
		var u entity.UserWithRole
		err := rows.Scan(
			&u.ID, &u.RoleID, &u.Names, &u.FirstLastname, &u.SecondLastname,
			&u.Phone, &u.PhotoPath, &u.Email, &u.PasswordHash,
			&u.IsActive, &u.IsRemoved, &u.RemovalDate, &u.RemovalReason, &u.UserWhoRemoved,
			&u.CreatedAt, &u.UpdatedAt, &u.RoleName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza un usuario (incluido su sobre de ciclo de vida).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET role_id = $2, names = $3, first_lastname = $4, second_lastname = $5,
			phone = $6, photo_path = $7, email = $8, password_hash = $9,
			is_active = $10, is_removed = $11, removal_date = $12, removal_reason = $13,
			user_who_removed = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.RoleID, user.Names, user.FirstLastname, user.SecondLastname,
		user.Phone, user.PhotoPath, user.Email, user.PasswordHash,
		user.IsActive, user.IsRemoved, user.RemovalDate, user.RemovalReason,
		user.UserWhoRemoved, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente un usuario por ID.
func (r *UserRepo) HardDelete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

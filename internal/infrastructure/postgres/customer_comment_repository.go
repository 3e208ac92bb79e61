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

var _ repository.CustomerCommentRepository = (*CustomerCommentRepo)(nil)

// CustomerCommentRepo implementación del puerto CustomerCommentRepository sobre PostgreSQL.
type CustomerCommentRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerCommentRepository construye el adaptador de persistencia para notas.
func NewCustomerCommentRepository(pool *pgxpool.Pool) *CustomerCommentRepo {
	return &CustomerCommentRepo{pool: pool}
}

const commentColumns = `id, customer_id, author_id, comment, is_active, is_removed, removal_date, removal_reason, user_who_removed, created_at, updated_at`

func scanComment(row pgx.Row) (*entity.CustomerComment, error) {
	var cm entity.CustomerComment
	err := row.Scan(
		&cm.ID, &cm.CustomerID, &cm.AuthorID, &cm.Comment,
		&cm.IsActive, &cm.IsRemoved, &cm.RemovalDate, &cm.RemovalReason, &cm.UserWhoRemoved,
		&cm.CreatedAt, &cm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cm, nil
}

// Create persiste una nota nueva.
func (r *CustomerCommentRepo) Create(comment *entity.CustomerComment) error {
	query := `
		INSERT INTO customer_comments (id, customer_id, author_id, comment, is_active, is_removed, removal_date, removal_reason, user_who_removed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		comment.ID, comment.CustomerID, comment.AuthorID, comment.Comment,
		comment.IsActive, comment.IsRemoved, comment.RemovalDate, comment.RemovalReason, comment.UserWhoRemoved,
		comment.CreatedAt, comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID obtiene una nota por ID.
func (r *CustomerCommentRepo) GetByID(id string) (*entity.CustomerComment, error) {
	query := `SELECT ` + commentColumns + ` FROM customer_comments WHERE id = $1`
	cm, err := scanComment(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return cm, nil
}

// ListActiveByCustomer lista las notas activas de un prospecto.
func (r *CustomerCommentRepo) ListActiveByCustomer(customerID string) ([]*entity.CustomerComment, error) {
	query := `SELECT ` + commentColumns + ` FROM customer_comments
		WHERE customer_id = $1 AND is_active AND NOT is_removed ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomerComment
	for rows.Next() {
		cm, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		list = append(list, cm)
	}
	return list, rows.Err()
}

// Update actualiza una nota (incluido su sobre de ciclo de vida).
func (r *CustomerCommentRepo) Update(comment *entity.CustomerComment) error {
	query := `
		UPDATE customer_comments SET comment = $2, is_active = $3, is_removed = $4,
			removal_date = $5, removal_reason = $6, user_who_removed = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		comment.ID, comment.Comment, comment.IsActive, comment.IsRemoved,
		comment.RemovalDate, comment.RemovalReason, comment.UserWhoRemoved, comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente una nota por ID.
func (r *CustomerCommentRepo) HardDelete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM customer_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

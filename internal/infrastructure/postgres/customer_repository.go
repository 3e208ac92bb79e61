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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador de persistencia para prospectos.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

const customerColumns = `c.id, c.name, c.phone, c.visit_date,
	c.location_id, c.car_model_id, c.advertising_medium_id, c.sales_advisor_id,
	c.is_active, c.is_removed, c.removal_date, c.removal_reason, c.user_who_removed,
	c.created_at, c.updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Date,
		&c.LocationID, &c.CarModelID, &c.AdvertisingMediumID, &c.SalesAdvisorID,
		&c.IsActive, &c.IsRemoved, &c.RemovalDate, &c.RemovalReason, &c.UserWhoRemoved,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create persiste un prospecto nuevo.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, visit_date,
			location_id, car_model_id, advertising_medium_id, sales_advisor_id,
			is_active, is_removed, removal_date, removal_reason, user_who_removed,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Date,
		customer.LocationID, customer.CarModelID, customer.AdvertisingMediumID, customer.SalesAdvisorID,
		customer.IsActive, customer.IsRemoved, customer.RemovalDate, customer.RemovalReason, customer.UserWhoRemoved,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un prospecto por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers c WHERE c.id = $1`
	c, err := scanCustomer(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListActiveExpanded lista los prospectos activos con los nombres de sus
// referencias resueltos en un único join (nada de carga perezosa por referencia).
func (r *CustomerRepo) ListActiveExpanded() ([]*entity.CustomerExpanded, error) {
	query := `SELECT ` + customerColumns + `,
			COALESCE(loc.name, ''), COALESCE(cm.name, ''),
			COALESCE(adv.name, ''), COALESCE(sa.name, '')
		FROM customers c
		LEFT JOIN catalog_items loc ON loc.id = c.location_id
		LEFT JOIN catalog_items cm  ON cm.id  = c.car_model_id
		LEFT JOIN catalog_items adv ON adv.id = c.advertising_medium_id
		LEFT JOIN sales_advisors sa ON sa.id  = c.sales_advisor_id
		WHERE c.is_active AND NOT c.is_removed
		ORDER BY c.created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomerExpanded
	for rows.Next() {
		var c entity.CustomerExpanded
		err := rows.Scan(
			&c.ID, &c.Name, &c.Phone, &c.Date,
			&c.LocationID, &c.CarModelID, &c.AdvertisingMediumID, &c.SalesAdvisorID,
			&c.IsActive, &c.IsRemoved, &c.RemovalDate, &c.RemovalReason, &c.UserWhoRemoved,
			&c.CreatedAt, &c.UpdatedAt,
			&c.LocationName, &c.CarModelName, &c.AdvertisingMediumName, &c.SalesAdvisorName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un prospecto (incluido su sobre de ciclo de vida).
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, phone = $3, visit_date = $4,
			location_id = $5, car_model_id = $6, advertising_medium_id = $7, sales_advisor_id = $8,
			is_active = $9, is_removed = $10, removal_date = $11, removal_reason = $12,
			user_who_removed = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Date,
		customer.LocationID, customer.CarModelID, customer.AdvertisingMediumID, customer.SalesAdvisorID,
		customer.IsActive, customer.IsRemoved, customer.RemovalDate, customer.RemovalReason,
		customer.UserWhoRemoved, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente un prospecto por ID.
func (r *CustomerRepo) HardDelete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

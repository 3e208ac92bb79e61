package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea el esquema si no existe. Todas las tablas llevan el sobre de
// ciclo de vida (is_active, is_removed, removal_date, removal_reason,
// user_who_removed, created_at, updated_at).
//
// El índice único sobre users(email) es deliberado: convierte la verificación
// consultar-luego-insertar del registro en una garantía a nivel de storage
// (dos signups concurrentes con el mismo email no pueden crear dos filas).
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrar esquema: %w", err)
		}
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id               UUID PRIMARY KEY,
		name             TEXT NOT NULL,
		is_active        BOOLEAN NOT NULL DEFAULT TRUE,
		is_removed       BOOLEAN NOT NULL DEFAULT FALSE,
		removal_date     TIMESTAMPTZ,
		removal_reason   TEXT,
		user_who_removed UUID,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id               UUID PRIMARY KEY,
		role_id          UUID REFERENCES roles(id) ON DELETE SET NULL,
		names            TEXT NOT NULL DEFAULT '',
		first_lastname   TEXT NOT NULL DEFAULT '',
		second_lastname  TEXT NOT NULL DEFAULT '',
		phone            TEXT NOT NULL DEFAULT '',
		photo_path       TEXT NOT NULL DEFAULT '',
		email            TEXT NOT NULL,
		password_hash    TEXT NOT NULL,
		is_active        BOOLEAN NOT NULL DEFAULT TRUE,
		is_removed       BOOLEAN NOT NULL DEFAULT FALSE,
		removal_date     TIMESTAMPTZ,
		removal_reason   TEXT,
		user_who_removed UUID,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,
	`CREATE TABLE IF NOT EXISTS catalog_items (
		id               UUID PRIMARY KEY,
		kind             TEXT NOT NULL,
		name             TEXT NOT NULL,
		is_active        BOOLEAN NOT NULL DEFAULT TRUE,
		is_removed       BOOLEAN NOT NULL DEFAULT FALSE,
		removal_date     TIMESTAMPTZ,
		removal_reason   TEXT,
		user_who_removed UUID,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS catalog_items_kind_idx ON catalog_items (kind)`,
	`CREATE TABLE IF NOT EXISTS sales_advisors (
		id               UUID PRIMARY KEY,
		name             TEXT NOT NULL,
		email            TEXT NOT NULL DEFAULT '',
		image_url        TEXT NOT NULL DEFAULT '',
		is_active        BOOLEAN NOT NULL DEFAULT TRUE,
		is_removed       BOOLEAN NOT NULL DEFAULT FALSE,
		removal_date     TIMESTAMPTZ,
		removal_reason   TEXT,
		user_who_removed UUID,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id                    UUID PRIMARY KEY,
		name                  TEXT NOT NULL,
		phone                 TEXT NOT NULL DEFAULT '',
		visit_date            TIMESTAMPTZ,
		location_id           UUID NOT NULL REFERENCES catalog_items(id),
		car_model_id          UUID REFERENCES catalog_items(id),
		advertising_medium_id UUID NOT NULL REFERENCES catalog_items(id),
		sales_advisor_id      UUID NOT NULL REFERENCES sales_advisors(id),
		is_active             BOOLEAN NOT NULL DEFAULT TRUE,
		is_removed            BOOLEAN NOT NULL DEFAULT FALSE,
		removal_date          TIMESTAMPTZ,
		removal_reason        TEXT,
		user_who_removed      UUID,
		created_at            TIMESTAMPTZ NOT NULL,
		updated_at            TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customer_comments (
		id               UUID PRIMARY KEY,
		customer_id      UUID NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		author_id        UUID NOT NULL,
		comment          TEXT NOT NULL,
		is_active        BOOLEAN NOT NULL DEFAULT TRUE,
		is_removed       BOOLEAN NOT NULL DEFAULT FALSE,
		removal_date     TIMESTAMPTZ,
		removal_reason   TEXT,
		user_who_removed UUID,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS customer_comments_customer_idx ON customer_comments (customer_id)`,
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea el esquema si no existe. Se ejecuta una sola vez en el
// arranque, antes de aceptar conexiones HTTP. No hay versionado de
// migraciones: el esquema es una tabla.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS customers (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT,
			description TEXT,
			email       TEXT,
			age         INTEGER
		)`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear tabla customers: %w", err)
	}
	return nil
}

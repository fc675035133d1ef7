package database

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Queries is the query tool shared by all services. Every method takes the
// context of the request it serves and returns database-level errors
// untranslated, services map them via mentor_errors.
type Queries struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Queries {
	return &Queries{pool: pool}
}

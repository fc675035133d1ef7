package database

import (
	"context"

	"github.com/google/uuid"
)

const createProblem = `
INSERT INTO problems (
	id, platform_id, platform, title,
	difficulty, description, url, examples, constraints
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, platform_id, platform, title, difficulty,
	description, url, examples, constraints, created_at
`

type CreateProblemParams struct {
	PlatformID  string
	Platform    string
	Title       string
	Difficulty  string
	Description string
	Url         string
	Examples    []byte
	Constraints []byte
}

func (q *Queries) CreateProblem(ctx context.Context, arg CreateProblemParams) (Problem, error) {
	row := q.pool.QueryRow(
		ctx, createProblem,
		uuid.New(), arg.PlatformID, arg.Platform, arg.Title,
		arg.Difficulty, arg.Description, arg.Url, arg.Examples, arg.Constraints,
	)
	return scanProblem(row)
}

const getProblemByPlatformId = `
SELECT id, platform_id, platform, title, difficulty,
	description, url, examples, constraints, created_at
FROM problems
WHERE platform = $1 AND platform_id = $2
`

type GetProblemByPlatformIdParams struct {
	Platform   string
	PlatformID string
}

func (q *Queries) GetProblemByPlatformId(
	ctx context.Context,
	arg GetProblemByPlatformIdParams,
) (Problem, error) {
	row := q.pool.QueryRow(ctx, getProblemByPlatformId, arg.Platform, arg.PlatformID)
	return scanProblem(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProblem(row rowScanner) (Problem, error) {
	var p Problem
	err := row.Scan(
		&p.ID, &p.PlatformID, &p.Platform, &p.Title, &p.Difficulty,
		&p.Description, &p.Url, &p.Examples, &p.Constraints, &p.CreatedAt,
	)
	return p, err
}

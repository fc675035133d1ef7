package database

import (
	"context"

	"github.com/google/uuid"
)

const createHint = `
INSERT INTO hints (id, user_id, problem_id, level, content)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, problem_id, level, content, created_at
`

type CreateHintParams struct {
	UserID    uuid.UUID
	ProblemID uuid.UUID
	Level     int32
	Content   string
}

func (q *Queries) CreateHint(ctx context.Context, arg CreateHintParams) (Hint, error) {
	row := q.pool.QueryRow(
		ctx, createHint,
		uuid.New(), arg.UserID, arg.ProblemID, arg.Level, arg.Content,
	)
	var h Hint
	err := row.Scan(&h.ID, &h.UserID, &h.ProblemID, &h.Level, &h.Content, &h.CreatedAt)
	return h, err
}

const getHint = `
SELECT id, user_id, problem_id, level, content, created_at
FROM hints
WHERE user_id = $1 AND problem_id = $2 AND level = $3
`

type GetHintParams struct {
	UserID    uuid.UUID
	ProblemID uuid.UUID
	Level     int32
}

func (q *Queries) GetHint(ctx context.Context, arg GetHintParams) (Hint, error) {
	row := q.pool.QueryRow(ctx, getHint, arg.UserID, arg.ProblemID, arg.Level)
	var h Hint
	err := row.Scan(&h.ID, &h.UserID, &h.ProblemID, &h.Level, &h.Content, &h.CreatedAt)
	return h, err
}

package database

import (
	"context"

	"github.com/google/uuid"
)

const createUser = `
INSERT INTO users (id, email, user_name, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id, email, user_name, password_hash, created_at, is_active
`

type CreateUserParams struct {
	Email        string
	UserName     string
	PasswordHash string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.pool.QueryRow(
		ctx, createUser,
		uuid.New(), arg.Email, arg.UserName, arg.PasswordHash,
	)
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.UserName,
		&u.PasswordHash, &u.CreatedAt, &u.IsActive,
	)
	return u, err
}

const getUserByEmail = `
SELECT id, email, user_name, password_hash, created_at, is_active
FROM users
WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.pool.QueryRow(ctx, getUserByEmail, email)
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.UserName,
		&u.PasswordHash, &u.CreatedAt, &u.IsActive,
	)
	return u, err
}

const getUserById = `
SELECT id, email, user_name, password_hash, created_at, is_active
FROM users
WHERE id = $1
`

func (q *Queries) GetUserById(ctx context.Context, id uuid.UUID) (User, error) {
	row := q.pool.QueryRow(ctx, getUserById, id)
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.UserName,
		&u.PasswordHash, &u.CreatedAt, &u.IsActive,
	)
	return u, err
}

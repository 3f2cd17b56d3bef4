package repository

import (
	"context"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/pgconv"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO users (id, email, password_hash, name, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
`, u.ID(), u.Email().Value(), u.PasswordHash(), u.Name(), u.Role().String(), u.IsActive())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login = NOW(), updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.pool.QueryRow(ctx, `
SELECT id, email, name, role, is_active FROM users WHERE id = $1
`, id).Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query user", err)
	}
	return &v, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var v queries.AuthorizedUserView
	var hash string
	err := r.pool.QueryRow(ctx, `
SELECT id, email, name, role, is_active, password_hash FROM users WHERE email = $1
`, email).Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to query user", err)
	}
	return &v, hash, nil
}

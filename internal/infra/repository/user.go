package repository

import (
	"context"

	"majestic-manor/internal/domain/user"
	"majestic-manor/internal/infra"
	"majestic-manor/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const selectUserByEmailSQL = `
SELECT id, email, password_hash, role, is_active, created_at
FROM users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRow(ctx, selectUserByEmailSQL, email)

	var (
		id                           uuid.UUID
		emailVal, passwordHash, role string
		isActive                     bool
		createdAt                    pgtype.Timestamptz
	)

	err := row.Scan(&id, &emailVal, &passwordHash, &role, &isActive, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	parsedEmail, err := user.NewEmail(emailVal)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user email", err)
	}

	parsedRole, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user role", err)
	}

	return user.ReconstructUser(id, parsedEmail, passwordHash, parsedRole, isActive, createdAt.Time), nil
}

//go:build unit || e2e

package builder

import (
	"time"

	domuser "majestic-manor/internal/domain/user"
	"majestic-manor/internal/pkg/password"
	"majestic-manor/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "admin@majestic-manor.test",
		Password: "correct-horse-battery",
		Role:     "admin",
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := domuser.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(u.Password)
	if err != nil {
		return nil, err
	}
	return domuser.ReconstructUser(u.ID, email, hash, role, u.IsActive, time.Now()), nil
}

func (u *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

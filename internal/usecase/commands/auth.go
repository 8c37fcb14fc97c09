package commands

import (
	"context"

	"majestic-manor/internal/infra"
	"majestic-manor/internal/pkg/errs"
	"majestic-manor/internal/pkg/jwt"
	"majestic-manor/internal/pkg/password"
	"majestic-manor/internal/usecase/queries"
)

type LoginResult struct {
	AccessToken string
	User        *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login deliberately reports the same error for unknown email, wrong
// password and inactive account.
func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	userEntity, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !userEntity.IsActive() {
		return nil, errs.ErrInvalidCredentials
	}

	if err := password.ComparePassword(userEntity.PasswordHash(), pass); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(userEntity.ID(), userEntity.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}

	return &LoginResult{
		AccessToken: token,
		User: &queries.AuthorizedUserView{
			ID:       userEntity.ID(),
			Email:    userEntity.Email().Value(),
			Role:     userEntity.Role().String(),
			IsActive: userEntity.IsActive(),
		},
	}, nil
}

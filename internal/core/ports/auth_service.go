package ports

import (
	"context"

	"github.com/sportsmeet/sportsmeet-api/internal/core/domain"
)

// RegisterInput holds everything needed to create an account.
type RegisterInput struct {
	Username      string
	Password      string
	Email         string
	DisplayName   string
	FavoriteSport string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
	UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error)
}

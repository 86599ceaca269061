package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an account plus its
// role-specific profile in one step.
type RegisterInput struct {
	Email    string
	Password string
	Role     string

	// Creator profile fields (role == creator).
	DisplayName string
	Niches      []string

	// Business profile fields (role == business).
	CompanyName string
	Website     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

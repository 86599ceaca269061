package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// AuthService implements registration and login. Registration creates the
// account and its role-specific profile in one call so a user never exists
// without the profile the identity resolver expects.
type AuthService struct {
	users      ports.UserRepository
	creators   ports.CreatorRepository
	businesses ports.BusinessRepository
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewAuthService(
	users ports.UserRepository,
	creators ports.CreatorRepository,
	businesses ports.BusinessRepository,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		creators:   creators,
		businesses: businesses,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	switch input.Role {
	case domain.RoleCreator:
		displayName := input.DisplayName
		if displayName == "" {
			displayName = input.Email
		}
		_, err = s.creators.Create(ctx, &domain.CreatorProfile{
			UserID:      created.ID,
			DisplayName: displayName,
			Niches:      input.Niches,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	case domain.RoleBusiness:
		companyName := input.CompanyName
		if companyName == "" {
			companyName = input.Email
		}
		_, err = s.businesses.Create(ctx, &domain.BusinessProfile{
			UserID:      created.ID,
			CompanyName: companyName,
			Website:     input.Website,
			Plan:        domain.PlanFree,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// An unknown email answers exactly like a wrong password so the
		// endpoint cannot be used to enumerate accounts.
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

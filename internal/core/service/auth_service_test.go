package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

const testSecret = "test-secret"

func newAuthFixture() (*AuthService, *stubUserRepo, *stubCreatorRepo, *stubBusinessRepo) {
	users := newStubUserRepo()
	creators := newStubCreatorRepo()
	businesses := newStubBusinessRepo()
	svc := NewAuthService(users, creators, businesses, testSecret, 0)
	return svc, users, creators, businesses
}

func TestRegisterCreatorCreatesProfile(t *testing.T) {
	svc, _, creators, _ := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, ports.RegisterInput{
		Email:       "ana@example.com",
		Password:    "hunter2hunter2",
		Role:        domain.RoleCreator,
		DisplayName: "Ana",
		Niches:      []string{"beauty"},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != domain.RoleCreator {
		t.Errorf("Role = %q, want creator", user.Role)
	}

	profile, err := creators.FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("creator profile not created: %v", err)
	}
	if profile.DisplayName != "Ana" {
		t.Errorf("DisplayName = %q, want Ana", profile.DisplayName)
	}
}

func TestRegisterBusinessStartsOnFreePlan(t *testing.T) {
	svc, _, _, businesses := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, ports.RegisterInput{
		Email:       "acme@example.com",
		Password:    "hunter2hunter2",
		Role:        domain.RoleBusiness,
		CompanyName: "Acme",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	profile, err := businesses.FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("business profile not created: %v", err)
	}
	if profile.Plan != domain.PlanFree {
		t.Errorf("Plan = %q, want free", profile.Plan)
	}
}

func TestRegisterDefaultsProfileNameToEmail(t *testing.T) {
	svc, _, creators, businesses := newAuthFixture()
	ctx := context.Background()

	creatorUser, err := svc.Register(ctx, ports.RegisterInput{
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
		Role:     domain.RoleCreator,
	})
	if err != nil {
		t.Fatalf("Register creator: %v", err)
	}
	profile, err := creators.FindByUserID(ctx, creatorUser.ID)
	if err != nil {
		t.Fatalf("creator profile not created: %v", err)
	}
	if profile.DisplayName != "ana@example.com" {
		t.Errorf("DisplayName = %q, want the email fallback", profile.DisplayName)
	}

	businessUser, err := svc.Register(ctx, ports.RegisterInput{
		Email:    "acme@example.com",
		Password: "hunter2hunter2",
		Role:     domain.RoleBusiness,
	})
	if err != nil {
		t.Fatalf("Register business: %v", err)
	}
	company, err := businesses.FindByUserID(ctx, businessUser.ID)
	if err != nil {
		t.Fatalf("business profile not created: %v", err)
	}
	if company.CompanyName != "acme@example.com" {
		t.Errorf("CompanyName = %q, want the email fallback", company.CompanyName)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "root@example.com",
		Password: "hunter2hunter2",
		Role:     domain.RoleAdmin,
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	input := ports.RegisterInput{
		Email:       "ana@example.com",
		Password:    "hunter2hunter2",
		Role:        domain.RoleCreator,
		DisplayName: "Ana",
	}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(ctx, input)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, ports.RegisterInput{
		Email:       "ana@example.com",
		Password:    "hunter2hunter2",
		Role:        domain.RoleCreator,
		DisplayName: "Ana",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := svc.Login(ctx, "ana@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("user id = %q, want %q", user.ID, registered.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims["sub"] != registered.ID {
		t.Errorf("sub claim = %v, want %q", claims["sub"], registered.ID)
	}
	if claims["role"] != domain.RoleCreator {
		t.Errorf("role claim = %v, want creator", claims["role"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, ports.RegisterInput{
		Email:       "ana@example.com",
		Password:    "hunter2hunter2",
		Role:        domain.RoleCreator,
		DisplayName: "Ana",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err := svc.Login(ctx, "ana@example.com", "wrong-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmailMatchesWrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	// Unknown accounts must be indistinguishable from bad passwords.
	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

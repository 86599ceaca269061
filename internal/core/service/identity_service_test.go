package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

func newIdentityFixture() (*IdentityService, *stubUserRepo, *stubCreatorRepo, *stubBusinessRepo) {
	users := newStubUserRepo()
	creators := newStubCreatorRepo()
	businesses := newStubBusinessRepo()
	svc := NewIdentityService(users, creators, businesses, zerolog.Nop())
	return svc, users, creators, businesses
}

func TestResolveCreatorPrincipal(t *testing.T) {
	svc, users, creators, _ := newIdentityFixture()
	ctx := context.Background()

	user, _ := users.Create(ctx, &domain.User{Email: "ana@example.com", Role: domain.RoleCreator})
	profile, _ := creators.Create(ctx, &domain.CreatorProfile{UserID: user.ID, DisplayName: "Ana"})

	p, err := svc.Resolve(ctx, ports.Subject{UserID: user.ID, Email: user.Email})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if p.Role != domain.RoleCreator {
		t.Errorf("Role = %q, want creator", p.Role)
	}
	if p.CreatorID != profile.ID {
		t.Errorf("CreatorID = %q, want %q", p.CreatorID, profile.ID)
	}
	if p.BusinessID != "" {
		t.Errorf("BusinessID = %q, want empty for creator principal", p.BusinessID)
	}
}

func TestResolveBusinessPrincipal(t *testing.T) {
	svc, users, _, businesses := newIdentityFixture()
	ctx := context.Background()

	user, _ := users.Create(ctx, &domain.User{Email: "acme@example.com", Role: domain.RoleBusiness})
	profile, _ := businesses.Create(ctx, &domain.BusinessProfile{UserID: user.ID, CompanyName: "Acme"})

	p, err := svc.Resolve(ctx, ports.Subject{UserID: user.ID, Email: user.Email})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if p.BusinessID != profile.ID {
		t.Errorf("BusinessID = %q, want %q", p.BusinessID, profile.ID)
	}
	if p.CreatorID != "" {
		t.Errorf("CreatorID = %q, want empty for business principal", p.CreatorID)
	}
}

func TestResolveAdminPrincipalHasNoProfileRefs(t *testing.T) {
	svc, users, _, _ := newIdentityFixture()
	ctx := context.Background()

	user, _ := users.Create(ctx, &domain.User{Email: "root@example.com", Role: domain.RoleAdmin})

	p, err := svc.Resolve(ctx, ports.Subject{UserID: user.ID})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.CreatorID != "" || p.BusinessID != "" {
		t.Errorf("admin principal carries profile refs: %+v", p)
	}
}

func TestResolveEmptySubject(t *testing.T) {
	svc, _, _, _ := newIdentityFixture()

	_, err := svc.Resolve(context.Background(), ports.Subject{})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestResolveMissingUserRecord(t *testing.T) {
	svc, _, _, _ := newIdentityFixture()

	// Valid-looking session whose account no longer exists.
	_, err := svc.Resolve(context.Background(), ports.Subject{UserID: "u404"})
	if !errors.Is(err, domain.ErrProfileMissing) {
		t.Fatalf("err = %v, want ErrProfileMissing", err)
	}
}

func TestResolveMissingRoleProfile(t *testing.T) {
	svc, users, _, _ := newIdentityFixture()
	ctx := context.Background()

	// Creator account without its creator profile: inconsistent state,
	// must surface as ErrProfileMissing, never a nil principal.
	user, _ := users.Create(ctx, &domain.User{Email: "ghost@example.com", Role: domain.RoleCreator})

	_, err := svc.Resolve(ctx, ports.Subject{UserID: user.ID})
	if !errors.Is(err, domain.ErrProfileMissing) {
		t.Fatalf("err = %v, want ErrProfileMissing", err)
	}
}

func TestResolveStoreFaultWrapsInternal(t *testing.T) {
	svc, users, _, _ := newIdentityFixture()
	users.findErr = errors.New("connection reset")

	_, err := svc.Resolve(context.Background(), ports.Subject{UserID: "u1"})
	if !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("err = %v, want wrapped ErrInternal", err)
	}
}

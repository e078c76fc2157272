package service

import (
	"context"
	"errors"
	"testing"

	"github.com/minicrm/crm-system/internal/core/domain"
)

func TestUserService_Me_FreePlan(t *testing.T) {
	contacts := newStubContactRepo()
	contacts.seed(1, 3)
	svc := NewUserService(newStubUserRepo(freeUser(1)), contacts, discardLogger)

	profile, err := svc.Me(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ID != 1 || profile.Email != "demo@minicrm.dev" || profile.Plan != domain.PlanFree {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.ContactLimit == nil || *profile.ContactLimit != domain.FreeContactLimit {
		t.Fatalf("expected contact limit %d, got %v", domain.FreeContactLimit, profile.ContactLimit)
	}
	if profile.ContactsUsed != 3 {
		t.Fatalf("expected 3 contacts used, got %d", profile.ContactsUsed)
	}
}

func TestUserService_Me_ProPlanUnlimited(t *testing.T) {
	contacts := newStubContactRepo()
	contacts.seed(1, domain.FreeContactLimit+2)
	svc := NewUserService(newStubUserRepo(proUser(1)), contacts, discardLogger)

	profile, err := svc.Me(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ContactLimit != nil {
		t.Fatalf("expected nil contact limit for pro plan, got %d", *profile.ContactLimit)
	}
	if profile.ContactsUsed != domain.FreeContactLimit+2 {
		t.Fatalf("unexpected contacts used: %d", profile.ContactsUsed)
	}
}

func TestUserService_Me_UserNotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubContactRepo(), discardLogger)

	_, err := svc.Me(context.Background(), 99)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Upgrade(t *testing.T) {
	users := newStubUserRepo(freeUser(1))
	svc := NewUserService(users, newStubContactRepo(), discardLogger)

	plan, err := svc.Upgrade(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan != domain.PlanPro {
		t.Fatalf("expected plan %q, got %q", domain.PlanPro, plan)
	}

	// Upgrading again is a no-op that still succeeds.
	plan, err = svc.Upgrade(context.Background(), 1)
	if err != nil || plan != domain.PlanPro {
		t.Fatalf("expected idempotent upgrade, got plan=%q err=%v", plan, err)
	}

	profile, err := svc.Me(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Plan != domain.PlanPro || profile.ContactLimit != nil {
		t.Fatalf("expected pro profile with no limit, got %+v", profile)
	}
}

func TestUserService_Upgrade_RepoError(t *testing.T) {
	users := newStubUserRepo(freeUser(1))
	users.upgradeErr = errors.New("connection reset")
	svc := NewUserService(users, newStubContactRepo(), discardLogger)

	if _, err := svc.Upgrade(context.Background(), 1); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}

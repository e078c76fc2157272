package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/minicrm/crm-system/internal/core/domain"
	"github.com/minicrm/crm-system/internal/core/ports"
)

type stubUserService struct {
	meFn      func(ctx context.Context, userID int64) (*ports.Profile, error)
	upgradeFn func(ctx context.Context, userID int64) (string, error)
}

func (s *stubUserService) Me(ctx context.Context, userID int64) (*ports.Profile, error) {
	return s.meFn(ctx, userID)
}

func (s *stubUserService) Upgrade(ctx context.Context, userID int64) (string, error) {
	return s.upgradeFn(ctx, userID)
}

func TestUserHandler_Me_FreePlan(t *testing.T) {
	limit := domain.FreeContactLimit
	stub := &stubUserService{
		meFn: func(_ context.Context, userID int64) (*ports.Profile, error) {
			if userID != domain.DefaultUserID {
				t.Fatalf("expected default user id, got %d", userID)
			}
			return &ports.Profile{
				ID: userID, Email: "demo@minicrm.dev", Plan: domain.PlanFree,
				ContactLimit: &limit, ContactsUsed: 2,
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/me", "")
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["plan"] != "free" || resp["contactLimit"] != float64(limit) || resp["contactsUsed"] != float64(2) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Me_ProPlanNullLimit(t *testing.T) {
	stub := &stubUserService{
		meFn: func(_ context.Context, userID int64) (*ports.Profile, error) {
			return &ports.Profile{ID: userID, Email: "pro@minicrm.dev", Plan: domain.PlanPro, ContactsUsed: 42}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/me", "")
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if v, present := resp["contactLimit"]; !present || v != nil {
		t.Fatalf("expected explicit null contactLimit, got %+v", resp)
	}
}

func TestUserHandler_Me_NotFoundPropagates(t *testing.T) {
	stub := &stubUserService{
		meFn: func(context.Context, int64) (*ports.Profile, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/me", "")
	if err := h.Me(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Upgrade(t *testing.T) {
	stub := &stubUserService{
		upgradeFn: func(context.Context, int64) (string, error) {
			return domain.PlanPro, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/upgrade", "")
	if err := h.Upgrade(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); !json.Valid([]byte(got)) || got == "" {
		t.Fatalf("invalid body: %q", got)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["plan"] != "pro" {
		t.Fatalf("expected plan pro, got %+v", resp)
	}
}

func TestUserHandler_ReadsIdentityFromContext(t *testing.T) {
	var gotID int64
	stub := &stubUserService{
		meFn: func(_ context.Context, userID int64) (*ports.Profile, error) {
			gotID = userID
			return &ports.Profile{ID: userID, Plan: domain.PlanPro}, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/me", "")
	c.Set("user_id", int64(8))
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotID != 8 {
		t.Fatalf("expected user id 8 from context, got %d", gotID)
	}
}

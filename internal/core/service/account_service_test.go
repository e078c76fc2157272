package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/minicrm/crm-system/internal/core/domain"
)

type stubAccountRepo struct {
	accounts  []domain.Account
	nextID    int64
	listErr   error
	createErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{nextID: 1}
}

func (r *stubAccountRepo) ListByUser(_ context.Context, userID int64) ([]domain.Account, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Account
	for _, a := range r.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAccountRepo) Create(_ context.Context, userID int64, name string) (*domain.Account, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	account := domain.Account{
		ID:        r.nextID,
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.accounts = append(r.accounts, account)
	return &account, nil
}

func TestAccountService_Create_TrimsName(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	account, err := svc.Create(context.Background(), 1, "  Acme Corp  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Name != "Acme Corp" {
		t.Fatalf("expected trimmed name, got %q", account.Name)
	}
	if account.ID == 0 || account.CreatedAt.IsZero() {
		t.Fatalf("expected populated row, got %+v", account)
	}
}

func TestAccountService_Create_BlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		svc := NewAccountService(newStubAccountRepo(), discardLogger)
		if _, err := svc.Create(context.Background(), 1, name); !errors.Is(err, domain.ErrNameRequired) {
			t.Fatalf("name %q: expected ErrNameRequired, got %v", name, err)
		}
	}
}

func TestAccountService_Create_NeverStoresOnValidationFailure(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	_, _ = svc.Create(context.Background(), 1, "   ")
	if len(repo.accounts) != 0 {
		t.Fatalf("expected no row created, got %d", len(repo.accounts))
	}
}

func TestAccountService_List_ScopedToUser(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), 1, "Mine"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(context.Background(), 2, "Theirs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accounts, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 1 || accounts[0].Name != "Mine" {
		t.Fatalf("unexpected accounts: %+v", accounts)
	}
}

func TestAccountService_List_RepoError(t *testing.T) {
	repo := newStubAccountRepo()
	repo.listErr = errors.New("connection reset")
	svc := NewAccountService(repo, discardLogger)

	if _, err := svc.List(context.Background(), 1); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}

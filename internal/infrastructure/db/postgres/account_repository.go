package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minicrm/crm-system/internal/core/domain"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// ListByUser returns the user's accounts, newest first.
func (r *AccountRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const q = `
		SELECT id, user_id, name, created_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Create inserts a new account and returns the stored row.
func (r *AccountRepository) Create(ctx context.Context, userID int64, name string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const q = `
		INSERT INTO accounts (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at`

	account := domain.Account{UserID: userID, Name: name}
	if err := r.pool.QueryRow(ctx, q, userID, name).Scan(&account.ID, &account.CreatedAt); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return &account, nil
}

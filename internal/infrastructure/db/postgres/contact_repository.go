package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minicrm/crm-system/internal/core/domain"
	"github.com/minicrm/crm-system/internal/core/ports"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// List returns the user's contacts newest first, left-joined with the
// associated account name. A non-nil filter.AccountID narrows the result
// to that account.
func (r *ContactRepository) List(ctx context.Context, filter ports.ContactFilter) ([]domain.ContactWithAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := `
		SELECT c.id, c.user_id, c.name, c.email, c.account_id, c.created_at,
		       a.name AS account_name
		FROM contacts c
		LEFT JOIN accounts a ON a.id = c.account_id
		WHERE c.user_id = $1`
	args := []any{filter.UserID}

	if filter.AccountID != nil {
		q += ` AND c.account_id = $2`
		args = append(args, *filter.AccountID)
	}
	q += ` ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.ContactWithAccount
	for rows.Next() {
		var c domain.ContactWithAccount
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.AccountID, &c.CreatedAt, &c.AccountName); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// CountByUser returns the number of contacts the user holds.
func (r *ContactRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const q = `SELECT COUNT(*) FROM contacts WHERE user_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return count, nil
}

// Create inserts a new contact and fills in its generated id and timestamp.
func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const q = `
		INSERT INTO contacts (user_id, account_id, name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, q, contact.UserID, contact.AccountID, contact.Name, contact.Email).
		Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

// Update rewrites the mutable fields of the row matching both the contact
// id and the owning user id.
func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const q = `
		UPDATE contacts
		SET name = $1, email = $2, account_id = $3
		WHERE id = $4 AND user_id = $5
		RETURNING created_at`

	err := r.pool.QueryRow(ctx, q, contact.Name, contact.Email, contact.AccountID, contact.ID, contact.UserID).
		Scan(&contact.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrContactNotFound
		}
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// Delete removes the row matching both id and the owning user id.
func (r *ContactRepository) Delete(ctx context.Context, userID, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	const q = `DELETE FROM contacts WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, q, id, userID)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

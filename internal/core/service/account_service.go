package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/minicrm/crm-system/internal/api/metrics"
	"github.com/minicrm/crm-system/internal/core/domain"
	"github.com/minicrm/crm-system/internal/core/ports"
)

type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// List returns the user's accounts, newest first.
func (s *AccountService) List(ctx context.Context, userID int64) ([]domain.Account, error) {
	accounts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

// Create stores a new account for the user. The name arrives already
// validated non-blank by the transport layer; it is trimmed here so the
// stored value carries no surrounding whitespace.
func (s *AccountService) Create(ctx context.Context, userID int64, name string) (*domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	account, err := s.repo.Create(ctx, userID, name)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to create account")
		return nil, err
	}

	metrics.AccountsCreatedTotal.Inc()
	s.logger.Info().Int64("user_id", userID).Int64("account_id", account.ID).Msg("account created")
	return account, nil
}

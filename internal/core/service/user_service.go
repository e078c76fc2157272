package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/minicrm/crm-system/internal/api/metrics"
	"github.com/minicrm/crm-system/internal/core/domain"
	"github.com/minicrm/crm-system/internal/core/ports"
)

type UserService struct {
	users    ports.UserRepository
	contacts ports.ContactRepository
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, contacts ports.ContactRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, contacts: contacts, logger: logger}
}

// Me returns the acting user's profile together with the plan quota and
// the number of contacts currently held.
func (s *UserService) Me(ctx context.Context, userID int64) (*ports.Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	used, err := s.contacts.CountByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to count contacts")
		return nil, err
	}

	return &ports.Profile{
		ID:           user.ID,
		Email:        user.Email,
		Plan:         user.Plan,
		ContactLimit: domain.ContactLimit(user.Plan),
		ContactsUsed: used,
	}, nil
}

// Upgrade moves the acting user to the pro plan. The underlying update is
// unconditional, so repeating it is a no-op.
func (s *UserService) Upgrade(ctx context.Context, userID int64) (string, error) {
	if err := s.users.UpgradeToPro(ctx, userID); err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to upgrade plan")
		return "", err
	}

	metrics.PlanUpgradesTotal.Inc()
	s.logger.Info().Int64("user_id", userID).Msg("plan upgraded to pro")
	return domain.PlanPro, nil
}

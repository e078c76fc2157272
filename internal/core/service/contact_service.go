package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/minicrm/crm-system/internal/api/metrics"
	"github.com/minicrm/crm-system/internal/core/domain"
	"github.com/minicrm/crm-system/internal/core/ports"
)

type ContactService struct {
	users    ports.UserRepository
	contacts ports.ContactRepository
	logger   zerolog.Logger
}

func NewContactService(users ports.UserRepository, contacts ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{users: users, contacts: contacts, logger: logger}
}

// List returns the user's contacts newest first, optionally narrowed to
// one account.
func (s *ContactService) List(ctx context.Context, userID int64, accountID *int64) ([]domain.ContactWithAccount, error) {
	contacts, err := s.contacts.List(ctx, ports.ContactFilter{UserID: userID, AccountID: accountID})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to list contacts")
		return nil, err
	}
	return contacts, nil
}

// Create adds a contact for the acting user. Checks run in contract
// order: the user must exist, a free-plan user must be under quota, and
// only then are the fields validated. The quota check and the insert are
// not wrapped in a transaction; two racing creations can both pass the
// count and transiently exceed the limit.
func (s *ContactService) Create(ctx context.Context, input ports.CreateContactInput) (*domain.Contact, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if user.Plan == domain.PlanFree {
		used, err := s.contacts.CountByUser(ctx, input.UserID)
		if err != nil {
			s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to count contacts")
			return nil, err
		}
		if !domain.CanCreateContact(user.Plan, used) {
			metrics.ContactLimitRejectionsTotal.Inc()
			s.logger.Info().Int64("user_id", input.UserID).Int("used", used).Msg("contact limit reached")
			return nil, domain.ErrContactLimitReached
		}
	}

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if email == "" {
		return nil, domain.ErrEmailRequired
	}

	contact := &domain.Contact{
		UserID:    input.UserID,
		AccountID: input.AccountID,
		Name:      name,
		Email:     email,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to create contact")
		return nil, err
	}

	metrics.ContactsCreatedTotal.WithLabelValues(user.Plan).Inc()
	s.logger.Info().Int64("user_id", input.UserID).Int64("contact_id", contact.ID).Msg("contact created")
	return contact, nil
}

// Update rewrites a contact's fields. The row must match both the contact
// id and the acting user id; a contact owned by someone else reads as not
// found. Fields arrive validated non-blank by the transport layer.
func (s *ContactService) Update(ctx context.Context, input ports.UpdateContactInput) (*domain.Contact, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if email == "" {
		return nil, domain.ErrEmailRequired
	}

	contact := &domain.Contact{
		ID:        input.ContactID,
		UserID:    input.UserID,
		AccountID: input.AccountID,
		Name:      name,
		Email:     email,
	}
	if err := s.contacts.Update(ctx, contact); err != nil {
		if err != domain.ErrContactNotFound {
			s.logger.Error().Err(err).Int64("user_id", input.UserID).Int64("contact_id", input.ContactID).Msg("failed to update contact")
		}
		return nil, err
	}
	return contact, nil
}

// Delete removes a contact owned by the acting user.
func (s *ContactService) Delete(ctx context.Context, userID, contactID int64) error {
	if err := s.contacts.Delete(ctx, userID, contactID); err != nil {
		if err != domain.ErrContactNotFound {
			s.logger.Error().Err(err).Int64("user_id", userID).Int64("contact_id", contactID).Msg("failed to delete contact")
		}
		return err
	}
	s.logger.Info().Int64("user_id", userID).Int64("contact_id", contactID).Msg("contact deleted")
	return nil
}

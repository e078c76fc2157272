package handler

import (
	"bytes"
	"strconv"
	"time"

	"github.com/minicrm/crm-system/internal/core/domain"
)

// optionalID is a nullable account reference that accepts a JSON number,
// a numeric string, or null, matching the loose coercion browser clients
// send for the accountId field.
type optionalID struct {
	Value *int64
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" || s == `""` {
		o.Value = nil
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	o.Value = &n
	return nil
}

// createContactRequest intentionally carries no validate tags: the
// contact-creation contract orders user lookup and the plan-limit check
// before field validation, so the service does the validating.
type createContactRequest struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	AccountID optionalID `json:"accountId"`
}

type updateContactRequest struct {
	Name      string     `json:"name"  validate:"notblank"`
	Email     string     `json:"email" validate:"notblank"`
	AccountID optionalID `json:"accountId"`
}

type contactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AccountID *int64    `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toContactResponse(c *domain.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		AccountID: c.AccountID,
		CreatedAt: c.CreatedAt,
	}
}

type contactListItem struct {
	contactResponse
	AccountName *string `json:"account_name"`
}

func toContactListItem(c domain.ContactWithAccount) contactListItem {
	return contactListItem{
		contactResponse: toContactResponse(&c.Contact),
		AccountName:     c.AccountName,
	}
}

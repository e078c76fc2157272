package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/minicrm/crm-system/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call
// c.Validate(req). Field failures translate to the domain's sentinel
// errors, which the central error handler renders as stable codes.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator. The "notblank" rule rejects values that are empty
// after trimming whitespace.
func NewValidator() *echoValidator {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Only the first field
// failure is reported; struct field order decides precedence, matching
// the contract's name-before-email ordering.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return fieldError(ve[0])
		}
		return err
	}
	return nil
}

func fieldError(fe validator.FieldError) error {
	if strings.EqualFold(fe.Field(), "email") {
		return domain.ErrEmailRequired
	}
	return domain.ErrNameRequired
}

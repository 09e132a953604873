package usecase

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/nxtgenhub/lead-relay/internal/entity"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Same rule the forms use before asking for a confirmation.
	v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return entity.IsValidEmail(fl.Field().String())
	})
	return v
}

// ValidateDispatchRequest requires a subject and at least one of html/text.
func ValidateDispatchRequest(req entity.DispatchRequest) error {
	return validate.Struct(req)
}

// ValidateConfirmation checks the nested confirmation mail. It is validated
// apart from the request because a bad confirmation never fails the relay.
func ValidateConfirmation(c entity.ConfirmationEmail) error {
	return validate.Struct(c)
}

// FormatValidationErrors flattens validator output to field -> failed tag.
func FormatValidationErrors(err error) map[string]any {
	fields := map[string]any{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = err.Error()
		return fields
	}
	for _, e := range verrs {
		fields[e.Field()] = "failed " + e.Tag()
	}
	return fields
}

// Package validation evaluates the field rules of the submission forms and
// reports every failing field at once as a field→message map. Services call
// Check before constructing an entity; a nil return means the form is valid.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
)

// contactEmailPattern is the minimal local@domain.tld shape: an @ followed by
// at least one dot. Deliberately looser than full RFC address parsing.
var contactEmailPattern = regexp.MustCompile(`^.+@.+\..+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their json names so the error map matches the
	// wire format of the form payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// The built-in email rule rejects some addresses the directory has
	// always accepted, so contact fields use the minimal shape instead.
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return contactEmailPattern.MatchString(fl.Field().String())
	})

	return v
}

// Check runs all rules on form and returns a ValidationError listing every
// failing field, or nil when the form is valid. Rules never short-circuit
// across fields.
func Check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = message(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

// message converts a single rule failure into a user-facing sentence.
func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "contact_email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s needs at least %s entry", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", field, fe.Param())
	case "gtefield":
		return field + " must not be below the lower bound"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

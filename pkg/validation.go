package pkg

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a struct validator reporting fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationMessage turns a validator error into a client facing message.
// Missing required fields are all reported with requiredMsg.
func ValidationMessage(err error, requiredMsg string) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	invalid := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Tag() == "required" {
			return requiredMsg
		}
		invalid = append(invalid, fe.Field())
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(invalid, ", "))
}

package catalog

import (
	"reflect"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct rules are declared with
// `validate` tags on the payload types; violations are reported under the
// field's JSON name.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct runs tag-based validation on a payload and converts the first
// violation into a ValidationError.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(err, "validate payload")
	}

	fe := verrs[0]
	reason := "is invalid"
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "url":
		reason = "must be a valid URL"
	}
	return &ValidationError{Field: fe.Field(), Reason: reason}
}

// CheckTaxField enforces the bidirectional tax-presence rule: a tax field must
// be present exactly when tax is applicable.
func CheckTaxField(applicable, present bool, field string) error {
	if applicable && !present {
		return &ValidationError{Field: field, Reason: "is required when tax is applicable"}
	}
	if !applicable && present {
		return &ValidationError{Field: field, Reason: "tax fields not allowed when tax is not applicable"}
	}
	return nil
}

// Package validation checks request bodies before any geocoding or storage
// work begins. Every violation is collected and reported together.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"addressbook-api/internal/apperrors"
	"addressbook-api/internal/models"

	"github.com/go-playground/validator/v10"
)

// Word and space classes cover Unicode letters, digits and spaces, so places
// such as "Las Piñas" pass.
const (
	word  = `[\p{L}\p{N}_]`
	space = `[\s\p{Z}]`
)

var patterns = map[string]*regexp.Regexp{
	"name":         regexp.MustCompile(`^[a-zA-Z\s\p{Z}]+$`),
	"email_format": regexp.MustCompile(`^[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.` + word + `+$`),
	"phone":        regexp.MustCompile(`^(09|\+639)\d{9}$`),
	"street_city":  regexp.MustCompile(`^(` + word + `+[,.]?` + space + `?)+$`),
	"country":      regexp.MustCompile(`^[a-zA-Z\s\p{Z}]+$`),
	"postal":       regexp.MustCompile(`^\d{4,10}$`),
}

var ruleMessages = map[string]string{
	"notblank":     "is required",
	"min":          "is too short",
	"max":          "is too long",
	"name":         "must contain letters and spaces only",
	"email_format": "must be a valid email address",
	"phone":        "must be in the format 09XXXXXXXXX or +639XXXXXXXXX",
	"street_city":  "must contain words separated by single spaces, commas or periods",
	"country":      "must contain letters and spaces only",
	"postal":       "must be 4 to 10 digits",
}

// Validator validates create and update requests.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the address book field rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	must(v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	for tag, re := range patterns {
		must(v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		}))
	}

	return &Validator{validate: v}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// ValidateCreate checks a create request. Name, email, phone and the street,
// city and country of the address are required; postal is optional.
func (v *Validator) ValidateCreate(in models.PersonCreate) error {
	return v.check(in)
}

// ValidateUpdate checks an update request. Every field is optional and only
// checked when present.
func (v *Validator) ValidateUpdate(in models.PersonUpdate) error {
	return v.check(in)
}

func (v *Validator) check(in any) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Validation(err.Error(), nil)
	}

	violations := make([]apperrors.Violation, 0, len(verrs))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		violations = append(violations, apperrors.Violation{
			Field:   field,
			Rule:    fe.Tag(),
			Message: fmt.Sprintf("%s %s", field, ruleMessages[fe.Tag()]),
		})
		fields = append(fields, field)
	}

	return apperrors.Validation(
		fmt.Sprintf("Please provide valid value(s) for: %s", strings.Join(fields, ", ")),
		violations,
	)
}

// fieldPath strips the root struct name: "PersonCreate.address.city" -> "address.city".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

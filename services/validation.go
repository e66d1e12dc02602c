package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries field-level messages keyed by JSON field name
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err carries field-level messages
func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

var supplierPattern = regexp.MustCompile(`^[A-Za-z0-9 \-_().,&]+$`)

// NewValidator returns a validator that reports JSON field names and knows the
// supplierchars tag (letters, digits, spaces and -_().,&).
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// only fails on a duplicate or empty tag name
	_ = v.RegisterValidation("supplierchars", func(fl validator.FieldLevel) bool {
		return supplierPattern.MatchString(fl.Field().String())
	})
	return v
}

// FieldErrors converts a validator error into field → message. The first
// failing rule of each field wins.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["request"] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = FieldMessage(fe)
	}
	return fields
}

// FieldMessage renders a single failed rule as a sentence
func FieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	numeric := isNumericKind(fe.Kind())

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		if numeric {
			return fmt.Sprintf("%s must be at least %s", label, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s entries", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		if numeric {
			return fmt.Sprintf("%s cannot exceed %s", label, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s cannot contain more than %s entries", label, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return label + " must be a valid email address"
	case "supplierchars":
		return label + " may only contain letters, numbers, spaces and - _ ( ) . , &"
	default:
		return label + " is invalid"
	}
}

// fieldLabel turns "expectedDate" or "fiscal_year" into "Expected date" / "Fiscal year"
func fieldLabel(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

package validatex

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/Abraxas-365/jobboard/pkg/errx"
	"github.com/go-playground/validator/v10"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("REQUEST")

var CodeValidationFailed = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON name so clients can map errors back
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("pgtext", pgText)
	})
	return validate
}

// pgText accepts strings PostgreSQL text columns can store: valid UTF-8 without NUL bytes
func pgText(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	s := fl.Field().String()
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// Struct validates v against its `validate` tags.
// Field failures are reported as one VALIDATION_FAILED error with a detail per field.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errx.Wrap(err, "invalid validation input", errx.TypeInternal)
	}

	out := ErrValidationFailed()
	for _, fe := range fieldErrs {
		out = out.WithDetail(fieldPath(fe), describe(fe))
	}
	return out
}

// fieldPath drops the top-level struct name: "CreateJobRequest.title" -> "title"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "pgtext":
		return "must be valid UTF-8 without NUL bytes"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

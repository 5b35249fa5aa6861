// Package validate wraps go-playground/validator with english
// translations and json-named fields.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var validate *validator.Validate
var translator ut.Translator

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	var ok bool
	translator, ok = ut.New(en.New(), en.New()).GetTranslator("en")
	if !ok {
		panic("validate: failed to get 'en' translator")
	}

	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})
}

// Struct checks val against its declared `validate` tags. val may be a
// struct, a slice, array or map whose elements are structs, or any depth
// of pointer to one of those. Nil pointers and values without struct
// tags always pass. A malformed tag is reported as an error.
func Struct(val any) (err error) {
	rv := reflect.ValueOf(val)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid validation tag: %v", r)
		}
	}()

	switch rv.Kind() {
	case reflect.Struct:
		return fieldErrors(validate.Struct(rv.Interface()), validator.FieldError.Field)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fieldErrors(validate.Var(rv.Interface(), "dive"), validator.FieldError.Namespace)
	default:
		return nil
	}
}

// fieldErrors converts validator errors into FieldErrors, naming each
// field with name.
func fieldErrors(err error, name func(validator.FieldError) string) error {
	if err == nil {
		return nil
	}

	var verrors validator.ValidationErrors
	if !errors.As(err, &verrors) {
		return err
	}

	fields := make(FieldErrors, 0, len(verrors))
	for _, verror := range verrors {
		fields = append(fields, FieldError{
			Field: name(verror),
			Tag:   verror.Tag(),
			Err:   customErrForTag(verror.Tag(), verror),
		})
	}

	return fields
}

// FieldError represents a single validation failure for a specific field.
type FieldError struct {
	Field string
	Tag   string
	Err   string
}

// FieldErrors represents a collection of field errors.
type FieldErrors []FieldError

// Error implements the error interface, returning a human-readable
// summary of all field errors.
func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, f := range fe {
		parts[i] = f.Field + ": " + f.Err
	}
	return strings.Join(parts, "; ")
}

// Fields returns the names of the fields that failed, in order.
func (fe FieldErrors) Fields() []string {
	names := make([]string, len(fe))
	for i, f := range fe {
		names[i] = f.Field
	}
	return names
}

func customErrForTag(tag string, verror validator.FieldError) string {
	switch tag {
	case "required":
		return "is required"
	default:
		return verror.Translate(translator)
	}
}

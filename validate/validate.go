package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Error reports every field that failed validation, in declaration order.
type Error struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Struct checks v against its validate tags. A nil return means v passed.
// Failures come back as *Error with one entry per offending field.
func Struct(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	e := &Error{Fields: make([]FieldError, len(fieldErrs))}
	for i, fe := range fieldErrs {
		e.Fields[i] = FieldError{Field: path(fe), Message: message(fe)}
	}
	return e
}

func validatorInstance() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())

		// report JSON field names, not Go ones
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return instance
}

// path strips the root struct name from the error namespace, leaving the
// JSON path of the offending field, e.g. "concerns[1].rating".
func path(fe validator.FieldError) string {
	if _, rest, found := strings.Cut(fe.Namespace(), "."); found {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	field := path(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	std  *validator.Validate
)

// Init configures the validator used by Gin's binding the same way as Default.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configure(v)
	}
}

// Default returns the shared validator used by the application services.
func Default() *validator.Validate {
	once.Do(func() {
		std = validator.New(validator.WithRequiredStructEnabled())
		configure(std)
	})
	return std
}

// Struct validates s with the shared validator.
func Struct(s any) error {
	return Default().Struct(s)
}

// configure uses JSON tag names in errors and registers alias tags.
func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("maxbytes", maxBytes)
	// bcrypt rejects input past 72 bytes; max counts runes, maxbytes counts bytes
	v.RegisterAlias("pwd", "min=8,max=72,maxbytes=72")
}

// maxBytes checks the UTF-8 encoded length of a string field.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return fl.Field().Kind() == reflect.String && len(fl.Field().String()) <= limit
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return map[string]string{"payload": "invalid json"}
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		if ute.Field != "" {
			return map[string]string{ute.Field: "must be a " + jsonTypeName(ute.Type)}
		}
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fieldPath(fe)] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

// fieldPath drops the root struct name, keeping nested paths like availability[0].from.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()

	switch tag {
	case "required":
		return "is required"
	case "required_with":
		return "is required when " + param + " is present"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", param)
	case "min":
		if isNumberKind(kind) {
			return "must be at least " + param
		}
		if kind == reflect.Slice {
			return "must contain at least " + param + " item(s)"
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(kind) {
			return "must be at most " + param
		}
		if kind == reflect.Slice {
			return "must contain at most " + param + " item(s)"
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "maxbytes":
		return "must be at most " + param + " bytes long"
	case "pwd":
		return "must be between 8 and 72 characters long and at most 72 bytes"
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "valid value"
	}
	switch {
	case isNumberKind(t.Kind()):
		return "number"
	case t.Kind() == reflect.String:
		return "string"
	case t.Kind() == reflect.Bool:
		return "boolean"
	case t.Kind() == reflect.Slice:
		return "list"
	default:
		return "object"
	}
}

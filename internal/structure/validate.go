package structure

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidate checks the struct tags of decoded requests. Field names
// are reported by their JSON names so messages match the input file.
var requestValidate *validator.Validate

func init() {
	requestValidate = validator.New()
	requestValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = requestValidate.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		v := fl.Field().Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	return true
}

// CheckTags runs struct-tag validation on v and reports the first failure
// as a ValidationError.
func CheckTags(v any) error {
	err := requestValidate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Msg: err.Error()}
	}

	fe := fieldErrs[0]
	entity := strings.TrimSuffix(fe.Namespace(), "."+fe.Field())
	if i := strings.Index(entity, "."); i >= 0 {
		entity = entity[i+1:]
	} else {
		entity = ""
	}
	return &ValidationError{Entity: entity, Field: fe.Field(), Msg: describe(fe)}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " entries"
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "finite":
		return "must be a finite number"
	default:
		return "failed '" + fe.Tag() + "' check"
	}
}

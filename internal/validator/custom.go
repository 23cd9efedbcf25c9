package validator

import (
	"math"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var profileKeyRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

func profileKeyValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return profileKeyRegex.MatchString(val)
}

func finiteValidator(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

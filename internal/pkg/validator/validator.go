// Package validator wraps go-playground/validator for request DTOs
// whose rules go beyond gin's binding tags.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the struct's validate tags. It returns nil on
// success, otherwise a field-to-rule map ready to use as an error
// response's details, with the rule parameter attached (e.g. "max=15").
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		rule := fe.Tag()
		if p := fe.Param(); p != "" {
			rule += "=" + p
		}
		fields[fe.Field()] = rule
	}
	return fields
}

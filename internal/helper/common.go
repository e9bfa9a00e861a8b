package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateInput runs struct tag validation on the given input.
func ValidateInput(input interface{}) error {
	return validate.Struct(input)
}

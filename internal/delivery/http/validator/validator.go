// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for struct tag validation.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the Echo request validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Handlers turn the returned
// validator.ValidationErrors into a 400 response.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

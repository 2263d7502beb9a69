// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *validator.Validate
}

// New creates the validator echo uses for c.Validate calls.
func New() echo.Validator {
	return &requestValidator{
		validate: validator.New(),
	}
}

// Validate runs struct tag validation on the bound request.
func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

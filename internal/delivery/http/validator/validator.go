// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	pgvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *pgvalidator.Validate
}

// New builds the request-body validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{validate: pgvalidator.New()}
}

// Validate runs struct-tag validation and converts failures into a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

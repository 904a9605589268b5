package auth

import (
	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/core/common/validation"
)

// LoginDTO is the transport shape used by the HTTP handlers to accept login requests.
type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (d LoginDTO) Validate() error {
	if d.Email == "" || d.Password == "" {
		return internal.NewValidationError("Email and password are required", internal.ErrCodeMissingFields)
	}
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

// RegisterDTO carries a visitor sign-up request.
type RegisterDTO struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

func (d RegisterDTO) Validate() error {
	if d.FirstName == "" || d.LastName == "" || d.Email == "" || d.Password == "" {
		return internal.NewValidationError("All fields are required", internal.ErrCodeMissingFields)
	}
	if err := validation.Struct(d); err != nil {
		return err
	}
	if err := validation.ValidatePasswordStrength(d.Password); err != nil {
		return err
	}
	return nil
}

package account

import (
	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/core/common/validation"
)

type CreateStaffDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"omitempty,email"`
	Role      string `json:"role"`
	Password  string `json:"password"`
	ParkName  string `json:"park_name"`
}

func (d CreateStaffDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("firstName", d.FirstName).Required()
	v.Field("lastName", d.LastName).Required()
	v.Field("email", d.Email).Required()
	v.Field("role", d.Role).Required()
	v.Field("password", d.Password).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type CreateParkStaffDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Park      string `json:"park"`
	Password  string `json:"password"`
}

func (d CreateParkStaffDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("firstName", d.FirstName).Required()
	v.Field("lastName", d.LastName).Required()
	v.Field("email", d.Email).Required()
	v.Field("park", d.Park).Required()
	v.Field("password", d.Password).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type UpdateStaffDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Park      string `json:"park"`
	Password  string `json:"password"`
}

func (d UpdateStaffDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("firstName", d.FirstName).Required()
	v.Field("lastName", d.LastName).Required()
	v.Field("email", d.Email).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type UpdateProfileDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	// Optional password change, used by the visitor profile endpoint.
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (d UpdateProfileDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("firstName", d.FirstName).Required()
	v.Field("lastName", d.LastName).Required()
	v.Field("email", d.Email).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateProfileDTO) WantsPasswordChange() bool {
	return d.CurrentPassword != "" && d.NewPassword != ""
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (d ChangePasswordDTO) Validate() error {
	if d.CurrentPassword == "" || d.NewPassword == "" || d.ConfirmPassword == "" {
		return internal.NewValidationError("All password fields are required", internal.ErrCodeMissingFields)
	}
	if d.NewPassword != d.ConfirmPassword {
		return internal.NewValidationError("New passwords don't match", internal.ErrCodeValidationFailed)
	}
	if err := validation.ValidatePasswordStrength(d.NewPassword); err != nil {
		return err
	}
	return nil
}

type StaffResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	ParkName  *string `json:"park_name,omitempty"`
	Role      string  `json:"role"`
	LastLogin string  `json:"last_login,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

func ToStaffResponse(m *StaffMember) *StaffResponse {
	resp := &StaffResponse{
		ID:        internal.FormatInt64(m.ID),
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Name:      m.FirstName + " " + m.LastName,
		Email:     m.Email,
		ParkName:  m.ParkName,
		Role:      m.Role,
		CreatedAt: internal.FormatDateTime(m.CreatedAt),
	}
	if m.LastLogin != nil {
		resp.LastLogin = internal.FormatDateTime(*m.LastLogin)
	}
	return resp
}

func ToStaffResponseSlice(members []*StaffMember) []*StaffResponse {
	result := make([]*StaffResponse, len(members))
	for i, m := range members {
		result[i] = ToStaffResponse(m)
	}
	return result
}

type ProfileResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	ParkName  *string `json:"parkName,omitempty"`
	AvatarURL string  `json:"avatarUrl"`
}

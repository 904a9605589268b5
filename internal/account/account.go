package account

import (
	"time"

	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/auth"
)

// StaffRoles are the roles an admin can create and manage. Park name is
// mandatory for every staff role except finance.
var StaffRoles = []auth.Role{
	auth.RoleParkStaff,
	auth.RoleAuditor,
	auth.RoleGovernment,
	auth.RoleFinance,
}

func IsStaffRole(role auth.Role) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}

func RoleRequiresPark(role auth.Role) bool {
	return role == auth.RoleParkStaff || role == auth.RoleAuditor || role == auth.RoleGovernment
}

// StaffMember is a row of the cross-table staff listing.
type StaffMember struct {
	ID        int64      `gorm:"column:id"`
	FirstName string     `gorm:"column:first_name"`
	LastName  string     `gorm:"column:last_name"`
	Email     string     `gorm:"column:email"`
	ParkName  *string    `gorm:"column:park_name"`
	Role      string     `gorm:"column:role"`
	LastLogin *time.Time `gorm:"column:last_login"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

var (
	ErrStaffNotFound     = internal.NewNotFoundError("Staff member not found", internal.ErrCodeRecordNotFound)
	ErrInvalidRole       = internal.NewValidationError("Invalid role", internal.ErrCodeValidationFailed)
	ErrParkRequired      = internal.NewValidationError("Park name is required for this role", internal.ErrCodeMissingFields)
	ErrEmailInUse        = internal.ErrEmailExists
	ErrIncorrectPassword = internal.NewUnauthorizedError("Current password is incorrect", internal.ErrCodeInvalidCredentials)
	ErrAvatarMissing     = internal.NewValidationError("No avatar file provided", internal.ErrCodeMissingFields)
	ErrParkNotFound      = internal.NewNotFoundError("Officer or park not found", internal.ErrCodeRecordNotFound)
)

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	internal "github.com/parkconserve/park-management/internal"
)

// Role identifies which account table a principal belongs to. The set is
// closed: adding a role means adding a table and extending the dispatch here.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleParkStaff  Role = "parkstaff"
	RoleFinance    Role = "finance"
	RoleAuditor    Role = "auditor"
	RoleGovernment Role = "government"
	RoleVisitor    Role = "visitor"
)

// StaffLoginOrder is the fixed priority in which the shared staff login
// searches account tables.
var StaffLoginOrder = []Role{
	RoleAdmin,
	RoleParkStaff,
	RoleFinance,
	RoleAuditor,
	RoleGovernment,
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleParkStaff, RoleFinance, RoleAuditor, RoleGovernment, RoleVisitor:
		return true
	}
	return false
}

// TableName maps a role to its account table.
func (r Role) TableName() string {
	switch r {
	case RoleAdmin:
		return "admins"
	case RoleParkStaff:
		return "park_staff"
	case RoleFinance:
		return "finance_officers"
	case RoleAuditor:
		return "auditors"
	case RoleGovernment:
		return "government_officers"
	case RoleVisitor:
		return "visitors"
	}
	return ""
}

// Account is the row shape shared by every role table.
type Account struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	FirstName    string     `gorm:"column:first_name" json:"firstName"`
	LastName     string     `gorm:"column:last_name" json:"lastName"`
	Email        string     `gorm:"column:email" json:"email"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	ParkName     *string    `gorm:"column:park_name" json:"parkName,omitempty"`
	AvatarURL    *string    `gorm:"column:avatar_url" json:"avatarUrl,omitempty"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"-"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"-"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"-"`
}

// Claims is the JWT payload: user id as string, email, role.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token string   `json:"token"`
	Role  Role     `json:"role"`
	User  *Account `json:"user"`
}

var (
	ErrAccountNotFound = internal.NewNotFoundError("Account not found", internal.ErrCodeRecordNotFound)

	ErrInvalidCredentials = internal.ErrInvalidCredentials
	ErrEmailExists        = internal.ErrEmailExists
	ErrTokenExpired       = internal.ErrTokenExpired
	ErrInvalidToken       = internal.ErrInvalidToken
)

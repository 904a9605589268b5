package provider

import (
	"time"

	internal "github.com/parkconserve/park-management/internal"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application is a service-provider application submitted through the public
// form. Uploaded documents live on disk; only their paths are persisted.
type Application struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	FirstName        string    `gorm:"column:first_name" json:"firstName"`
	LastName         string    `gorm:"column:last_name" json:"lastName"`
	Email            string    `gorm:"column:email" json:"email"`
	Phone            string    `gorm:"column:phone" json:"phone,omitempty"`
	CompanyType      string    `gorm:"column:company_type" json:"companyType"`
	ProvidedService  string    `gorm:"column:provided_service" json:"providedService,omitempty"`
	CompanyName      string    `gorm:"column:company_name" json:"companyName"`
	TaxID            string    `gorm:"column:tax_id" json:"taxId"`
	RegistrationPath string    `gorm:"column:registration_path" json:"-"`
	LetterPath       *string   `gorm:"column:letter_path" json:"-"`
	Status           string    `gorm:"column:status" json:"status"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"-"`
}

func (Application) TableName() string {
	return "services"
}

// StatusCount feeds the government status chart.
type StatusCount struct {
	Status string `gorm:"column:status" json:"status"`
	Count  int64  `gorm:"column:count" json:"count"`
}

func ValidStatus(status string) bool {
	return status == StatusPending || status == StatusApproved || status == StatusRejected
}

var (
	ErrApplicationNotFound = internal.NewNotFoundError("Service application not found", internal.ErrCodeRecordNotFound)
	ErrRegistrationMissing = internal.NewValidationError("Company registration file is required", internal.ErrCodeMissingFields)
	ErrInvalidStatus       = internal.NewValidationError("Status must be pending, approved or rejected", internal.ErrCodeInvalidStatus)
)

package fundrequest

import (
	"time"

	internal "github.com/parkconserve/park-management/internal"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// FundRequest is a park-staff funding request, scoped to the requester's
// park and reviewed by that park's finance officer.
type FundRequest struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Amount      float64   `gorm:"column:amount" json:"amount"`
	Category    string    `gorm:"column:category" json:"category"`
	ParkName    string    `gorm:"column:parkname" json:"parkName"`
	Urgency     string    `gorm:"column:urgency" json:"urgency"`
	Status      string    `gorm:"column:status" json:"status"`
	CreatedBy   int64     `gorm:"column:created_by" json:"createdBy"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"-"`
}

func (FundRequest) TableName() string {
	return "fund_requests"
}

func (f *FundRequest) CanBeModified() bool {
	return f.Status == StatusPending
}

// FundRequestWithStaff is the finance listing row joined with the
// requester's details.
type FundRequestWithStaff struct {
	FundRequest
	StaffFirstName *string `gorm:"column:first_name" json:"staffFirstName,omitempty"`
	StaffLastName  *string `gorm:"column:last_name" json:"staffLastName,omitempty"`
	StaffEmail     *string `gorm:"column:staff_email" json:"staffEmail,omitempty"`
}

// Stats summarizes a park's requests for the staff dashboard.
type Stats struct {
	TotalRequests  int64   `json:"totalRequests"`
	PendingCount   int64   `json:"pendingCount"`
	ApprovedCount  int64   `json:"approvedCount"`
	RejectedCount  int64   `json:"rejectedCount"`
	TotalRequested float64 `json:"totalRequested"`
	TotalApproved  float64 `json:"totalApproved"`
}

func ValidStatus(status string) bool {
	return status == StatusPending || status == StatusApproved || status == StatusRejected
}

var (
	// Not-found and out-of-scope deliberately collapse to the same 404 so
	// responses don't leak other parks' request ids.
	ErrFundRequestNotFound = internal.NewNotFoundError("Fund request not found or unauthorized", internal.ErrCodeRecordNotFound)
	ErrCannotModify        = internal.NewValidationError("Only pending requests can be modified", internal.ErrCodeCannotModify)
	ErrInvalidStatus       = internal.NewValidationError("Status must be approved or rejected", internal.ErrCodeInvalidStatus)
)

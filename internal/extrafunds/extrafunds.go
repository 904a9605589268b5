package extrafunds

import (
	"time"

	internal "github.com/parkconserve/park-management/internal"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Request is a supplementary budget request raised by a finance officer
// for spending beyond the approved budget, reviewed by a government
// officer.
type Request struct {
	ID               int64      `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"column:title" json:"title"`
	Description      string     `gorm:"column:description" json:"description"`
	Amount           float64    `gorm:"column:amount" json:"amount"`
	ParkName         string     `gorm:"column:park_name" json:"parkName"`
	Category         string     `gorm:"column:category" json:"category"`
	Justification    string     `gorm:"column:justification" json:"justification"`
	ExpectedDuration string     `gorm:"column:expected_duration" json:"expectedDuration"`
	Status           string     `gorm:"column:status" json:"status"`
	Reason           *string    `gorm:"column:reason" json:"reason,omitempty"`
	ReviewedBy       *int64     `gorm:"column:reviewed_by" json:"reviewedBy,omitempty"`
	ReviewedDate     *time.Time `gorm:"column:reviewed_date" json:"-"`
	CreatedBy        int64      `gorm:"column:created_by" json:"createdBy"`
	CreatedAt        time.Time  `gorm:"column:created_at" json:"-"`
}

func (Request) TableName() string {
	return "extra_funds_requests"
}

func (r *Request) CanBeReviewed() bool {
	return r.Status == StatusPending
}

var (
	ErrRequestNotFound = internal.NewNotFoundError("Extra funds request not found or unauthorized", internal.ErrCodeRecordNotFound)
	ErrCannotModify    = internal.NewValidationError("Only pending requests can be modified", internal.ErrCodeCannotModify)
	ErrInvalidStatus   = internal.NewValidationError("Status must be approved or rejected", internal.ErrCodeInvalidStatus)
)

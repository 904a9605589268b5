package budget

import (
	"time"

	internal "github.com/parkconserve/park-management/internal"
)

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

const (
	ItemTypeExpense = "expense"
	ItemTypeIncome  = "income"
)

// Budget is an annual park budget created by a finance officer and
// approved by a government officer. Items live in their own table and
// are replaced wholesale on every edit.
type Budget struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	FiscalYear  string     `gorm:"column:fiscal_year" json:"fiscalYear"`
	TotalAmount float64    `gorm:"column:total_amount" json:"totalAmount"`
	ParkName    string     `gorm:"column:park_name" json:"parkName"`
	Description string     `gorm:"column:description" json:"description"`
	Status      string     `gorm:"column:status" json:"status"`
	Reason      *string    `gorm:"column:reason" json:"reason,omitempty"`
	CreatedBy   int64      `gorm:"column:created_by" json:"createdBy"`
	ApprovedBy  *int64     `gorm:"column:approved_by" json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time `gorm:"column:approved_at" json:"-"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"-"`
}

func (Budget) TableName() string {
	return "budgets"
}

// CanBeReviewed reports whether the budget is still awaiting a decision.
// Approval, rejection and edits are only reachable from submitted.
func (b *Budget) CanBeReviewed() bool {
	return b.Status == StatusSubmitted
}

type Item struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	BudgetID    int64   `gorm:"column:budget_id" json:"-"`
	Category    string  `gorm:"column:category" json:"category"`
	Description string  `gorm:"column:description" json:"description"`
	Amount      float64 `gorm:"column:amount" json:"amount"`
	Type        string  `gorm:"column:type" json:"type"`
}

func (Item) TableName() string {
	return "budget_items"
}

// BudgetWithNames carries the creator and approver first names joined
// from the officer tables for list views.
type BudgetWithNames struct {
	Budget
	CreatedByName  string  `gorm:"column:created_by_name" json:"-"`
	ApprovedByName *string `gorm:"column:approved_by_name" json:"-"`
}

var (
	ErrBudgetNotFound  = internal.NewNotFoundError("Budget not found or unauthorized", internal.ErrCodeRecordNotFound)
	ErrNotSubmitted    = internal.NewValidationError("Budget is not in submitted status", internal.ErrCodeCannotModify)
	ErrInvalidStatus   = internal.NewValidationError("Status must be approved or rejected", internal.ErrCodeInvalidStatus)
	ErrInvalidItemType = internal.NewValidationError("Each item must specify type as expense or income", internal.ErrCodeInvalidItemType)
)

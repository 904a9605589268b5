package budget

import (
	"strings"

	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/core/common/validation"
)

type ItemDTO struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

func (d ItemDTO) Validate() error {
	if d.Type != ItemTypeExpense && d.Type != ItemTypeIncome {
		return ErrInvalidItemType
	}
	if strings.TrimSpace(d.Category) == "" || strings.TrimSpace(d.Description) == "" {
		return internal.NewValidationError("Item category and description cannot be empty", internal.ErrCodeMissingFields)
	}
	if d.Amount <= 0 {
		return internal.NewValidationError("Item amount must be positive", internal.ErrCodeInvalidAmount)
	}
	return nil
}

type CreateBudgetDTO struct {
	Title       string    `json:"title"`
	FiscalYear  string    `json:"fiscal_year"`
	TotalAmount float64   `json:"total_amount"`
	ParkName    string    `json:"park_name"`
	Description string    `json:"description"`
	Items       []ItemDTO `json:"items"`
}

func (d CreateBudgetDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("title", d.Title).Required()
	v.Field("fiscal_year", d.FiscalYear).Required()
	v.Field("park_name", d.ParkName).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	if d.TotalAmount <= 0 {
		return internal.NewValidationError("Total amount must be positive", internal.ErrCodeInvalidAmount)
	}
	if len(d.Items) == 0 {
		return internal.NewValidationError("Budget must include at least one item", internal.ErrCodeMissingFields)
	}
	for _, item := range d.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (d CreateBudgetDTO) items(budgetID int64) []Item {
	items := make([]Item, len(d.Items))
	for i, it := range d.Items {
		items[i] = Item{
			BudgetID:    budgetID,
			Category:    it.Category,
			Description: it.Description,
			Amount:      it.Amount,
			Type:        it.Type,
		}
	}
	return items
}

type DecisionDTO struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (d DecisionDTO) Validate() error {
	if d.Status != StatusApproved && d.Status != StatusRejected {
		return ErrInvalidStatus
	}
	if err := validation.ValidateReviewReason(d.Reason); err != nil {
		return err
	}
	return nil
}

type BudgetResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	FiscalYear     string  `json:"fiscalYear"`
	TotalAmount    float64 `json:"totalAmount"`
	ParkName       string  `json:"parkName"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	Reason         *string `json:"reason,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	ApprovedAt     string  `json:"approvedAt,omitempty"`
	CreatedByName  string  `json:"createdByName,omitempty"`
	ApprovedByName *string `json:"approvedByName,omitempty"`
	Items          []Item  `json:"items"`
}

func ToResponse(b *BudgetWithNames, items []Item) *BudgetResponse {
	if items == nil {
		items = []Item{}
	}
	resp := &BudgetResponse{
		ID:             internal.FormatInt64(b.ID),
		Title:          b.Title,
		FiscalYear:     b.FiscalYear,
		TotalAmount:    b.TotalAmount,
		ParkName:       b.ParkName,
		Description:    b.Description,
		Status:         b.Status,
		Reason:         b.Reason,
		CreatedAt:      internal.FormatDateTime(b.CreatedAt),
		CreatedByName:  b.CreatedByName,
		ApprovedByName: b.ApprovedByName,
		Items:          items,
	}
	if b.ApprovedAt != nil {
		resp.ApprovedAt = internal.FormatDateTime(*b.ApprovedAt)
	}
	return resp
}

package fundrequest

import (
	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/core/common/validation"
)

type CreateFundRequestDTO struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Urgency     string  `json:"urgency"`
}

func (d CreateFundRequestDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("title", d.Title).Required()
	v.Field("description", d.Description).Required()
	v.Field("category", d.Category).Required()
	v.Field("urgency", d.Urgency).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	if d.Amount <= 0 {
		return internal.NewValidationError("Amount must be positive", internal.ErrCodeInvalidAmount)
	}
	return nil
}

type UpdateFundRequestDTO struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Urgency     string  `json:"urgency"`
}

func (d UpdateFundRequestDTO) Validate() error {
	return CreateFundRequestDTO(d).Validate()
}

type UpdateStatusDTO struct {
	Status string `json:"status"`
}

type FundRequestResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	ParkName    string  `json:"parkName"`
	Urgency     string  `json:"urgency"`
	Status      string  `json:"status"`
	CreatedBy   int64   `json:"createdBy"`
	CreatedAt   string  `json:"createdAt"`
}

func ToResponse(f *FundRequest) *FundRequestResponse {
	return &FundRequestResponse{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Amount:      f.Amount,
		Category:    f.Category,
		ParkName:    f.ParkName,
		Urgency:     f.Urgency,
		Status:      f.Status,
		CreatedBy:   f.CreatedBy,
		CreatedAt:   internal.FormatDateTime(f.CreatedAt),
	}
}

func ToResponseSlice(requests []*FundRequest) []*FundRequestResponse {
	result := make([]*FundRequestResponse, len(requests))
	for i, f := range requests {
		result[i] = ToResponse(f)
	}
	return result
}

package emergency

import (
	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/core/common/validation"
)

type CreateRequestDTO struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	ParkName      string  `json:"parkName"`
	EmergencyType string  `json:"emergencyType"`
	Justification string  `json:"justification"`
	Timeframe     string  `json:"timeframe"`
}

func (d CreateRequestDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("title", d.Title).Required()
	v.Field("description", d.Description).Required()
	v.Field("parkName", d.ParkName).Required()
	v.Field("emergencyType", d.EmergencyType).Required()
	v.Field("justification", d.Justification).Required()
	v.Field("timeframe", d.Timeframe).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	if d.Amount <= 0 {
		return internal.NewValidationError("Amount must be positive", internal.ErrCodeInvalidAmount)
	}
	return nil
}

type ReviewDTO struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (d ReviewDTO) Validate() error {
	if d.Status != StatusApproved && d.Status != StatusRejected {
		return ErrInvalidStatus
	}
	if err := validation.ValidateReviewReason(d.Reason); err != nil {
		return err
	}
	return nil
}

type RequestResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	ParkName      string  `json:"parkName"`
	EmergencyType string  `json:"emergencyType"`
	Justification string  `json:"justification"`
	Timeframe     string  `json:"timeframe"`
	Status        string  `json:"status"`
	Reason        *string `json:"reason,omitempty"`
	SubmittedDate string  `json:"submittedDate"`
	ReviewedDate  string  `json:"reviewedDate,omitempty"`
}

func ToResponse(r *Request) *RequestResponse {
	resp := &RequestResponse{
		ID:            internal.FormatInt64(r.ID),
		Title:         r.Title,
		Description:   r.Description,
		Amount:        r.Amount,
		ParkName:      r.ParkName,
		EmergencyType: r.EmergencyType,
		Justification: r.Justification,
		Timeframe:     r.Timeframe,
		Status:        r.Status,
		Reason:        r.Reason,
		SubmittedDate: internal.FormatDate(r.CreatedAt),
	}
	if r.ReviewedDate != nil {
		resp.ReviewedDate = internal.FormatDate(*r.ReviewedDate)
	}
	return resp
}

func ToResponseSlice(requests []*Request) []*RequestResponse {
	result := make([]*RequestResponse, len(requests))
	for i, r := range requests {
		result[i] = ToResponse(r)
	}
	return result
}

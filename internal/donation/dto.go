package donation

import (
	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/core/common/validation"
)

type CreateDonationDTO struct {
	DonationType string  `json:"donationType"`
	Amount       float64 `json:"amount"`
	ParkName     string  `json:"parkName"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email" validate:"omitempty,email"`
	Message      string  `json:"message"`
}

func (d CreateDonationDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("donationType", d.DonationType).Required()
	v.Field("parkName", d.ParkName).Required()
	v.Field("firstName", d.FirstName).Required()
	v.Field("lastName", d.LastName).Required()
	v.Field("email", d.Email).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	if d.Amount <= 0 {
		return internal.NewValidationError("Donation amount must be positive", internal.ErrCodeInvalidAmount)
	}
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

// DonationResponse renders timestamps in the public wire format.
type DonationResponse struct {
	ID            int64   `json:"id"`
	DonationType  string  `json:"donationType"`
	Amount        float64 `json:"amount"`
	ParkName      string  `json:"parkName"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	Message       string  `json:"message,omitempty"`
	Status        string  `json:"status"`
	TransactionID *string `json:"transactionId,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

func ToResponse(d *Donation) *DonationResponse {
	return &DonationResponse{
		ID:            d.ID,
		DonationType:  d.DonationType,
		Amount:        d.Amount,
		ParkName:      d.ParkName,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Email:         d.Email,
		Message:       d.Message,
		Status:        d.Status,
		TransactionID: d.TransactionID,
		CreatedAt:     internal.FormatDateTime(d.CreatedAt),
	}
}

func ToResponseSlice(donations []*Donation) []*DonationResponse {
	result := make([]*DonationResponse, len(donations))
	for i, d := range donations {
		result[i] = ToResponse(d)
	}
	return result
}

package provider

import (
	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/core/common/validation"
)

// ApplyDTO carries the multipart form fields of an application. Files are
// handled separately by the service.
type ApplyDTO struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Phone           string
	CompanyType     string `validate:"required"`
	ProvidedService string
	CompanyName     string `validate:"required"`
	TaxID           string `validate:"required"`
}

func (d ApplyDTO) Validate() error {
	if d.FirstName == "" || d.LastName == "" || d.Email == "" || d.CompanyType == "" || d.CompanyName == "" || d.TaxID == "" {
		return internal.NewValidationError("Missing required fields", internal.ErrCodeMissingFields)
	}
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

type UpdateStatusDTO struct {
	Status string `json:"status"`
}

type ApplicationResponse struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	CompanyType     string `json:"companyType"`
	ProvidedService string `json:"providedService,omitempty"`
	CompanyName     string `json:"companyName"`
	TaxID           string `json:"taxId"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

func ToResponse(a *Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:              a.ID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		Phone:           a.Phone,
		CompanyType:     a.CompanyType,
		ProvidedService: a.ProvidedService,
		CompanyName:     a.CompanyName,
		TaxID:           a.TaxID,
		Status:          a.Status,
		CreatedAt:       internal.FormatDateTime(a.CreatedAt),
	}
}

func ToResponseSlice(apps []*Application) []*ApplicationResponse {
	result := make([]*ApplicationResponse, len(apps))
	for i, a := range apps {
		result[i] = ToResponse(a)
	}
	return result
}

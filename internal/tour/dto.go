package tour

import (
	"strings"
	"time"

	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/core/common/validation"
)

type BookTourDTO struct {
	ParkName        string  `json:"parkName"`
	TourName        string  `json:"tourName"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Guests          int     `json:"guests"`
	Amount          float64 `json:"amount"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email" validate:"omitempty,email"`
	SpecialRequests string  `json:"specialRequests"`
}

// Validate enforces the booking rules: a known purpose, 1 to 20 guests, a
// future date, and amount equal to guests times the flat rate.
func (d BookTourDTO) Validate() (time.Time, error) {
	v := validation.NewValidator()
	v.Field("parkName", d.ParkName).Required()
	v.Field("tourName", d.TourName).Required()
	v.Field("date", d.Date).Required()
	v.Field("time", d.Time).Required()
	v.Field("firstName", d.FirstName).Required()
	v.Field("lastName", d.LastName).Required()
	v.Field("email", d.Email).Required()
	if err := v.Validate(); err != nil {
		return time.Time{}, err
	}

	purpose := strings.TrimSpace(d.TourName)
	if !IsValidPurpose(purpose) {
		return time.Time{}, internal.NewValidationError("Please select a valid tour purpose", internal.ErrCodeInvalidPurpose)
	}

	if d.Guests < MinGuests || d.Guests > MaxGuests {
		return time.Time{}, internal.NewValidationError("Number of guests must be between 1 and 20", internal.ErrCodeInvalidGuests)
	}

	if d.Amount != float64(d.Guests*PricePerGuest) {
		return time.Time{}, internal.NewValidationError("Invalid amount: must be $75 per guest", internal.ErrCodeInvalidAmount)
	}

	date, err := time.Parse(internal.DateLayout, d.Date)
	if err != nil {
		return time.Time{}, internal.NewValidationError("Invalid date or time format", internal.ErrCodeInvalidDate)
	}
	if _, err := time.Parse("15:04", d.Time); err != nil {
		return time.Time{}, internal.NewValidationError("Invalid date or time format", internal.ErrCodeInvalidDate)
	}

	today := time.Now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return time.Time{}, internal.NewValidationError("Tour date must be in the future", internal.ErrCodeInvalidDate)
	}

	if err := validation.Struct(d); err != nil {
		return time.Time{}, err
	}

	return date, nil
}

type BookingResponse struct {
	ID              int64   `json:"id"`
	ParkName        string  `json:"parkName"`
	TourName        string  `json:"tourName"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Guests          int     `json:"guests"`
	Amount          float64 `json:"amount"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	Status          string  `json:"status"`
	TransactionID   *string `json:"transactionId,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

func ToResponse(b *Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		ParkName:        b.ParkName,
		TourName:        b.TourName,
		Date:            internal.FormatDate(b.Date),
		Time:            b.Time,
		Guests:          b.Guests,
		Amount:          b.Amount,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		TransactionID:   b.TransactionID,
		CreatedAt:       internal.FormatDateTime(b.CreatedAt),
	}
}

func ToResponseSlice(bookings []*Booking) []*BookingResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = ToResponse(b)
	}
	return result
}

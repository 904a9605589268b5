package payment

import (
	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/core/common/validation"
)

type ProcessPaymentDTO struct {
	PaymentType   string  `json:"paymentType"`
	Amount        float64 `json:"amount"`
	CardName      string  `json:"cardName"`
	CardNumber    string  `json:"cardNumber"`
	ExpiryDate    string  `json:"expiryDate"`
	CVV           string  `json:"cvv"`
	CustomerEmail string  `json:"customerEmail" validate:"omitempty,email"`
	ParkName      string  `json:"parkName"`
}

func (d ProcessPaymentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("paymentType", d.PaymentType).Required()
	v.Field("cardName", d.CardName).Required()
	v.Field("cardNumber", d.CardNumber).Required()
	v.Field("expiryDate", d.ExpiryDate).Required()
	v.Field("cvv", d.CVV).Required()
	v.Field("customerEmail", d.CustomerEmail).Required()
	if err := v.Validate(); err != nil {
		return err
	}

	if d.Amount <= 0 {
		return internal.NewValidationError("Payment amount must be positive", internal.ErrCodeInvalidAmount)
	}

	if d.PaymentType != PaymentTypeDonation && d.PaymentType != PaymentTypeTour {
		return ErrInvalidPaymentType
	}

	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

// ProcessPaymentResponse is the public confirmation shape.
type ProcessPaymentResponse struct {
	Message       string `json:"message"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Date          string `json:"date"`
}

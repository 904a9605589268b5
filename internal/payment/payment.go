package payment

import (
	"fmt"
	"math/rand/v2"
	"time"

	internal "github.com/parkconserve/park-management/internal"
)

const (
	StatusCompleted = "completed"

	PaymentTypeDonation = "donation"
	PaymentTypeTour     = "tour"

	// MatchWindow bounds how far back a payment looks for its pending
	// donation or tour booking.
	MatchWindow = time.Hour
)

// Payment stores a processed card payment. Only the last four card digits
// are persisted.
type Payment struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	TransactionID   string    `gorm:"column:transaction_id" json:"transactionId"`
	PaymentType     string    `gorm:"column:payment_type" json:"paymentType"`
	Amount          float64   `gorm:"column:amount" json:"amount"`
	CardName        string    `gorm:"column:card_name" json:"cardName"`
	CardNumberLast4 string    `gorm:"column:card_number_last4" json:"cardNumberLast4"`
	ExpiryDate      string    `gorm:"column:expiry_date" json:"expiryDate"`
	Status          string    `gorm:"column:status" json:"status"`
	ParkName        string    `gorm:"column:park_name" json:"parkName,omitempty"`
	CustomerEmail   string    `gorm:"column:customer_email" json:"customerEmail"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// NewTransactionID builds an id of the form TR-<yymmddHHMMSS>-<3 digits>.
func NewTransactionID(now time.Time) string {
	return fmt.Sprintf("TR-%s-%03d", now.Format("060102150405"), rand.IntN(900)+100)
}

// LastFourDigits extracts the last four digits of a card number with spaces
// stripped, falling back to "0000" for short values.
func LastFourDigits(cardNumber string) string {
	digits := make([]rune, 0, len(cardNumber))
	for _, r := range cardNumber {
		if r != ' ' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return "0000"
	}
	return string(digits[len(digits)-4:])
}

var (
	ErrNoMatchingDonation = internal.NewNotFoundError("No matching donation record found", internal.ErrCodeNoMatchingRecord)
	ErrNoMatchingTour     = internal.NewNotFoundError("No matching tour record found", internal.ErrCodeNoMatchingRecord)
	ErrInvalidPaymentType = internal.NewValidationError("Payment type must be donation or tour", internal.ErrCodeValidationFailed)
)

package donation

import (
	"time"

	internal "github.com/parkconserve/park-management/internal"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Donation struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	DonationType  string    `gorm:"column:donation_type" json:"donationType"`
	Amount        float64   `gorm:"column:amount" json:"amount"`
	ParkName      string    `gorm:"column:park_name" json:"parkName"`
	FirstName     string    `gorm:"column:first_name" json:"firstName"`
	LastName      string    `gorm:"column:last_name" json:"lastName"`
	Email         string    `gorm:"column:email" json:"email"`
	Message       string    `gorm:"column:message" json:"message,omitempty"`
	IsAnonymous   bool      `gorm:"column:is_anonymous" json:"isAnonymous"`
	Status        string    `gorm:"column:status" json:"status"`
	TransactionID *string   `gorm:"column:transaction_id" json:"transactionId,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"-"`
}

func (Donation) TableName() string {
	return "donations"
}

// DonationWithPayment is the admin listing row: donation joined with its
// payment record by transaction id.
type DonationWithPayment struct {
	Donation
	PaymentStatus  *string `gorm:"column:payment_status" json:"paymentStatus,omitempty"`
	CardName       *string `gorm:"column:card_name" json:"cardName,omitempty"`
	CardNumberLast *string `gorm:"column:card_number_last4" json:"cardNumberLast4,omitempty"`
}

var ErrDonationNotFound = internal.NewNotFoundError("Donation not found", internal.ErrCodeRecordNotFound)

package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeUserLoggedIn    = "auth.login"
	EventTypePaymentRecorded = "payment.recorded"
)

// UserLoggedInEvent is published on every successful login. A subscriber
// persists it to login_logs, which feeds the admin login metrics.
type UserLoggedInEvent struct {
	BaseEvent
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func NewUserLoggedInEvent(userID int64, email, role string) *UserLoggedInEvent {
	return &UserLoggedInEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeUserLoggedIn,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"user_id": userID,
				"email":   email,
				"role":    role,
			},
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}
}

// PaymentRecordedEvent is published after a card payment is stored and its
// matching donation or tour booking is marked completed.
type PaymentRecordedEvent struct {
	BaseEvent
	TransactionID string  `json:"transaction_id"`
	PaymentType   string  `json:"payment_type"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
}

func NewPaymentRecordedEvent(transactionID, paymentType, email string, amount float64) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePaymentRecorded,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"transaction_id": transactionID,
				"payment_type":   paymentType,
				"email":          email,
				"amount":         amount,
			},
		},
		TransactionID: transactionID,
		PaymentType:   paymentType,
		Email:         email,
		Amount:        amount,
	}
}

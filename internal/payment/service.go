package payment

import (
	"context"
	"log/slog"
	"time"

	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/core/events"
)

type Repository interface {
	// RecordAndComplete inserts the payment and completes the most recent
	// matching pending donation or tour booking in one transaction. It
	// returns ErrNoMatchingDonation or ErrNoMatchingTour when nothing
	// within the match window qualifies.
	RecordAndComplete(payment *Payment) error
	ListAll() ([]*Payment, error)
}

type Service struct {
	repo     Repository
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// ProcessPayment records a card payment and completes its donation or tour
// booking. At most one row is completed, never created.
func (s *Service) ProcessPayment(ctx context.Context, dto ProcessPaymentDTO) (*Payment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	payment := &Payment{
		TransactionID:   NewTransactionID(now),
		PaymentType:     dto.PaymentType,
		Amount:          dto.Amount,
		CardName:        dto.CardName,
		CardNumberLast4: LastFourDigits(dto.CardNumber),
		ExpiryDate:      dto.ExpiryDate,
		Status:          StatusCompleted,
		ParkName:        dto.ParkName,
		CustomerEmail:   dto.CustomerEmail,
		CreatedAt:       now,
	}

	if err := s.repo.RecordAndComplete(payment); err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("payment processing failed", "error", err, "transaction_id", payment.TransactionID)
		return nil, err
	}

	s.logger.Info("payment processed",
		"transaction_id", payment.TransactionID,
		"payment_type", payment.PaymentType,
		"amount", payment.Amount)

	if s.eventBus != nil {
		_ = s.eventBus.Publish(ctx, events.NewPaymentRecordedEvent(
			payment.TransactionID, payment.PaymentType, payment.CustomerEmail, payment.Amount))
	}

	return payment, nil
}

func (s *Service) ListAll() ([]*Payment, error) {
	payments, err := s.repo.ListAll()
	if err != nil {
		s.logger.Error("failed to list payments", "error", err)
		return nil, err
	}
	return payments, nil
}

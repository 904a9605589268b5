package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/payment"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// RecordAndComplete runs the payment insert and the donation/tour completion
// as one transaction so a payment never lands without its matching record.
func (r *PaymentRepository) RecordAndComplete(p *payment.Payment) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		table := "donations"
		notFound := payment.ErrNoMatchingDonation
		if p.PaymentType == payment.PaymentTypeTour {
			table = "tours"
			notFound = payment.ErrNoMatchingTour
		}

		since := p.CreatedAt.Add(-payment.MatchWindow)

		// Newest pending record for this email and amount within the
		// window; complete exactly that row.
		var matchIDs []int64
		err := tx.Table(table).
			Where("email = ? AND amount = ? AND created_at >= ?", p.CustomerEmail, p.Amount, since).
			Order("created_at desc").
			Limit(1).
			Pluck("id", &matchIDs).Error
		if err != nil {
			return err
		}
		if len(matchIDs) == 0 {
			return notFound
		}

		return tx.Table(table).
			Where("id = ?", matchIDs[0]).
			Updates(map[string]interface{}{
				"status":         payment.StatusCompleted,
				"transaction_id": p.TransactionID,
			}).Error
	})
}

func (r *PaymentRepository) ListAll() ([]*payment.Payment, error) {
	var payments []*payment.Payment
	err := r.db.Order("created_at desc").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

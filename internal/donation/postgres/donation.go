package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/donation"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(d *donation.Donation) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	return r.db.Create(d).Error
}

func (r *DonationRepository) ListByPark(parkName string) ([]*donation.Donation, error) {
	var donations []*donation.Donation
	err := r.db.Where("park_name = ?", parkName).
		Order("created_at desc").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *DonationRepository) ListByEmail(email string) ([]*donation.Donation, error) {
	var donations []*donation.Donation
	err := r.db.Where("email = ?", email).
		Order("created_at desc").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *DonationRepository) ListAllWithPayments() ([]*donation.DonationWithPayment, error) {
	var rows []*donation.DonationWithPayment
	err := r.db.Table("donations d").
		Select("d.*, p.status as payment_status, p.card_name, p.card_number_last4").
		Joins("LEFT JOIN payments p ON p.transaction_id = d.transaction_id").
		Order("d.created_at desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

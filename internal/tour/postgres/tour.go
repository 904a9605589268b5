package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/tour"
)

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

func (r *TourRepository) Create(b *tour.Booking) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return r.db.Create(b).Error
}

func (r *TourRepository) ListByPark(parkName string) ([]*tour.Booking, error) {
	var bookings []*tour.Booking
	err := r.db.Where("park_name = ?", parkName).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *TourRepository) ListByEmail(email string) ([]*tour.Booking, error) {
	var bookings []*tour.Booking
	err := r.db.Where("email = ?", email).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *TourRepository) ListAll() ([]*tour.Booking, error) {
	var bookings []*tour.Booking
	err := r.db.Order("created_at desc").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

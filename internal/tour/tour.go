package tour

import (
	"time"

	internal "github.com/parkconserve/park-management/internal"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"

	// PricePerGuest is the flat tour rate in dollars.
	PricePerGuest = 75

	MinGuests = 1
	MaxGuests = 20
)

// ValidPurposes is the closed set of bookable tour purposes.
var ValidPurposes = []string{
	"Wildlife Photography", "Bird Watching", "Hiking Adventure",
	"Nature Trail Walking", "Canopy Walk", "Forest Exploration",
	"Educational Tour", "Research Visit", "Cultural Experience",
	"Waterfall Visit", "Mountain Climbing", "Camping",
	"Animal Observation", "Conservation Learning", "School Field Trip",
}

func IsValidPurpose(purpose string) bool {
	for _, p := range ValidPurposes {
		if p == purpose {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	ParkName        string    `gorm:"column:park_name" json:"parkName"`
	TourName        string    `gorm:"column:tour_name" json:"tourName"`
	Date            time.Time `gorm:"column:date" json:"-"`
	Time            string    `gorm:"column:time" json:"time"`
	Guests          int       `gorm:"column:guests" json:"guests"`
	Amount          float64   `gorm:"column:amount" json:"amount"`
	FirstName       string    `gorm:"column:first_name" json:"firstName"`
	LastName        string    `gorm:"column:last_name" json:"lastName"`
	Email           string    `gorm:"column:email" json:"email"`
	SpecialRequests string    `gorm:"column:special_requests" json:"specialRequests,omitempty"`
	Status          string    `gorm:"column:status" json:"status"`
	TransactionID   *string   `gorm:"column:transaction_id" json:"transactionId,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"-"`
}

func (Booking) TableName() string {
	return "tours"
}

var ErrBookingNotFound = internal.NewNotFoundError("Tour booking not found", internal.ErrCodeRecordNotFound)

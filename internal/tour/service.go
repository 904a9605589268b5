package tour

import (
	"log/slog"
	"strings"

	internal "github.com/parkconserve/park-management/internal"
)

type Repository interface {
	Create(booking *Booking) error
	ListByPark(parkName string) ([]*Booking, error)
	ListByEmail(email string) ([]*Booking, error)
	ListAll() ([]*Booking, error)
}

type ParkValidator interface {
	IsValidPark(name string) bool
}

type Service struct {
	repo   Repository
	parks  ParkValidator
	logger *slog.Logger
}

func NewService(repo Repository, parks ParkValidator, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		parks:  parks,
		logger: logger,
	}
}

// BookTour records a pending tour booking from the public form.
func (s *Service) BookTour(dto BookTourDTO) (*Booking, error) {
	date, err := dto.Validate()
	if err != nil {
		return nil, err
	}

	if !s.parks.IsValidPark(dto.ParkName) {
		return nil, internal.NewValidationError("Unknown park", internal.ErrCodeValidationFailed)
	}

	booking := &Booking{
		ParkName:        dto.ParkName,
		TourName:        strings.TrimSpace(dto.TourName),
		Date:            date,
		Time:            dto.Time,
		Guests:          dto.Guests,
		Amount:          dto.Amount,
		FirstName:       dto.FirstName,
		LastName:        dto.LastName,
		Email:           dto.Email,
		SpecialRequests: dto.SpecialRequests,
		Status:          StatusPending,
	}

	if err := s.repo.Create(booking); err != nil {
		s.logger.Error("failed to create tour booking", "error", err, "park", dto.ParkName)
		return nil, err
	}

	s.logger.Info("tour booked",
		"booking_id", booking.ID,
		"park", booking.ParkName,
		"purpose", booking.TourName,
		"guests", booking.Guests)

	return booking, nil
}

func (s *Service) ListByPark(parkName string) ([]*Booking, error) {
	bookings, err := s.repo.ListByPark(parkName)
	if err != nil {
		s.logger.Error("failed to list tour bookings", "error", err, "park", parkName)
		return nil, err
	}
	return bookings, nil
}

func (s *Service) ListByEmail(email string) ([]*Booking, error) {
	bookings, err := s.repo.ListByEmail(email)
	if err != nil {
		s.logger.Error("failed to list tour bookings by email", "error", err)
		return nil, err
	}
	return bookings, nil
}

func (s *Service) ListAll() ([]*Booking, error) {
	bookings, err := s.repo.ListAll()
	if err != nil {
		s.logger.Error("failed to list all tour bookings", "error", err)
		return nil, err
	}
	return bookings, nil
}

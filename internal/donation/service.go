package donation

import (
	"log/slog"

	internal "github.com/parkconserve/park-management/internal"
)

type Repository interface {
	Create(donation *Donation) error
	ListByPark(parkName string) ([]*Donation, error)
	ListByEmail(email string) ([]*Donation, error)
	ListAllWithPayments() ([]*DonationWithPayment, error)
}

// ParkValidator verifies that a park name exists in the catalog.
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

// CreateDonation records a public donation in pending status. Completion
// happens when a matching payment arrives.
func (s *Service) CreateDonation(dto CreateDonationDTO) (*Donation, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if !s.parks.IsValidPark(dto.ParkName) {
		return nil, internal.NewValidationError("Unknown park", internal.ErrCodeValidationFailed)
	}

	donation := &Donation{
		DonationType: dto.DonationType,
		Amount:       dto.Amount,
		ParkName:     dto.ParkName,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		Message:      dto.Message,
		Status:       StatusPending,
	}

	if err := s.repo.Create(donation); err != nil {
		s.logger.Error("failed to create donation", "error", err, "park", dto.ParkName)
		return nil, err
	}

	s.logger.Info("donation recorded",
		"donation_id", donation.ID,
		"park", donation.ParkName,
		"amount", donation.Amount)

	return donation, nil
}

// ListByPark returns donations scoped to a finance officer's park.
func (s *Service) ListByPark(parkName string) ([]*Donation, error) {
	donations, err := s.repo.ListByPark(parkName)
	if err != nil {
		s.logger.Error("failed to list donations", "error", err, "park", parkName)
		return nil, err
	}
	return donations, nil
}

// ListByEmail returns a visitor's own donations.
func (s *Service) ListByEmail(email string) ([]*Donation, error) {
	donations, err := s.repo.ListByEmail(email)
	if err != nil {
		s.logger.Error("failed to list donations by email", "error", err)
		return nil, err
	}
	return donations, nil
}

// ListAllWithPayments returns the admin view joined with payment details.
func (s *Service) ListAllWithPayments() ([]*DonationWithPayment, error) {
	donations, err := s.repo.ListAllWithPayments()
	if err != nil {
		s.logger.Error("failed to list donations with payments", "error", err)
		return nil, err
	}
	return donations, nil
}

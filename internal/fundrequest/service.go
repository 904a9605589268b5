package fundrequest

import (
	"log/slog"
)

type Repository interface {
	Create(request *FundRequest) error
	GetByID(id int64) (*FundRequest, error)
	ListByPark(parkName string, status string) ([]*FundRequest, error)
	ListByParkWithStaff(parkName string, status string) ([]*FundRequestWithStaff, error)
	Update(request *FundRequest) error
	// UpdateStatusScoped flips the status of a request only if it belongs
	// to parkName and is still pending, reporting whether a row changed.
	UpdateStatusScoped(id int64, parkName, status string) (bool, error)
	DeleteScoped(id int64, createdBy int64) (bool, error)
	StatsByPark(parkName string) (*Stats, error)
}

// Directory resolves an authenticated principal to their park.
type Directory interface {
	ParkNameFor(role string, userID int64) (string, error)
}

type Service struct {
	repo      Repository
	directory Directory
	logger    *slog.Logger
}

func NewService(repo Repository, directory Directory, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		logger:    logger,
	}
}

// Create records a pending request. The park comes from the staff member's
// own record at call time, never from the payload.
func (s *Service) Create(staffID int64, dto CreateFundRequestDTO) (*FundRequest, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	parkName, err := s.directory.ParkNameFor("parkstaff", staffID)
	if err != nil {
		return nil, err
	}

	request := &FundRequest{
		Title:       dto.Title,
		Description: dto.Description,
		Amount:      dto.Amount,
		Category:    dto.Category,
		ParkName:    parkName,
		Urgency:     dto.Urgency,
		Status:      StatusPending,
		CreatedBy:   staffID,
	}

	if err := s.repo.Create(request); err != nil {
		s.logger.Error("failed to create fund request", "error", err, "staff_id", staffID)
		return nil, err
	}

	s.logger.Info("fund request created",
		"request_id", request.ID,
		"park", request.ParkName,
		"amount", request.Amount)

	return request, nil
}

// ListForStaff returns all requests for the staff member's park.
func (s *Service) ListForStaff(staffID int64) ([]*FundRequest, error) {
	parkName, err := s.directory.ParkNameFor("parkstaff", staffID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByPark(parkName, "")
}

// Update edits a pending request owned by the staff member.
func (s *Service) Update(staffID, requestID int64, dto UpdateFundRequestDTO) (*FundRequest, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	request, err := s.repo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if request.CreatedBy != staffID {
		return nil, ErrFundRequestNotFound
	}
	if !request.CanBeModified() {
		return nil, ErrCannotModify
	}

	request.Title = dto.Title
	request.Description = dto.Description
	request.Amount = dto.Amount
	request.Category = dto.Category
	request.Urgency = dto.Urgency

	if err := s.repo.Update(request); err != nil {
		s.logger.Error("failed to update fund request", "error", err, "request_id", requestID)
		return nil, err
	}
	return request, nil
}

// Delete removes a pending request owned by the staff member.
func (s *Service) Delete(staffID, requestID int64) error {
	request, err := s.repo.GetByID(requestID)
	if err != nil {
		return err
	}
	if request.CreatedBy != staffID {
		return ErrFundRequestNotFound
	}
	if !request.CanBeModified() {
		return ErrCannotModify
	}

	deleted, err := s.repo.DeleteScoped(requestID, staffID)
	if err != nil {
		s.logger.Error("failed to delete fund request", "error", err, "request_id", requestID)
		return err
	}
	if !deleted {
		return ErrFundRequestNotFound
	}

	s.logger.Info("fund request deleted", "request_id", requestID, "staff_id", staffID)
	return nil
}

// StatsForStaff summarizes the staff member's park.
func (s *Service) StatsForStaff(staffID int64) (*Stats, error) {
	parkName, err := s.directory.ParkNameFor("parkstaff", staffID)
	if err != nil {
		return nil, err
	}
	return s.repo.StatsByPark(parkName)
}

// ListForFinance returns requests for the finance officer's park, joined
// with requester details, optionally filtered by status.
func (s *Service) ListForFinance(officerID int64, status string) ([]*FundRequestWithStaff, error) {
	parkName, err := s.directory.ParkNameFor("finance", officerID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByParkWithStaff(parkName, status)
}

// Decide approves or rejects a pending request within the officer's park.
// A request outside the park reads as not found; decisions are final.
func (s *Service) Decide(officerID, requestID int64, status string) error {
	if status != StatusApproved && status != StatusRejected {
		return ErrInvalidStatus
	}

	parkName, err := s.directory.ParkNameFor("finance", officerID)
	if err != nil {
		return err
	}

	changed, err := s.repo.UpdateStatusScoped(requestID, parkName, status)
	if err != nil {
		s.logger.Error("failed to update fund request status", "error", err, "request_id", requestID)
		return err
	}
	if !changed {
		request, err := s.repo.GetByID(requestID)
		if err == nil && request.ParkName == parkName {
			return ErrCannotModify
		}
		return ErrFundRequestNotFound
	}

	s.logger.Info("fund request decided",
		"request_id", requestID,
		"officer_id", officerID,
		"status", status)
	return nil
}

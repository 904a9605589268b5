package emergency

import (
	"log/slog"
	"strings"
	"time"
)

type Repository interface {
	Create(request *Request) error
	GetByID(id int64) (*Request, error)
	ListByCreator(creatorID int64, parkName string) ([]*Request, error)
	ListByStatus(status string) ([]*Request, error)
	ListAll() ([]*Request, error)
	Update(request *Request) error
	// Review persists the decision only while the request is still
	// pending, so a decision cannot be overwritten.
	Review(request *Request) error
}

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

// Create records a pending emergency request for the finance officer.
func (s *Service) Create(officerID int64, dto CreateRequestDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	request := &Request{
		Title:         dto.Title,
		Description:   dto.Description,
		Amount:        dto.Amount,
		ParkName:      dto.ParkName,
		EmergencyType: dto.EmergencyType,
		Justification: dto.Justification,
		Timeframe:     dto.Timeframe,
		Status:        StatusPending,
		CreatedBy:     officerID,
	}

	if err := s.repo.Create(request); err != nil {
		s.logger.Error("failed to create emergency request", "error", err, "officer_id", officerID)
		return nil, err
	}

	s.logger.Info("emergency request created",
		"request_id", request.ID,
		"park", request.ParkName,
		"amount", request.Amount)

	return request, nil
}

// ListForOfficer returns the officer's own requests, scoped to their park.
func (s *Service) ListForOfficer(officerID int64) ([]*Request, error) {
	parkName, err := s.directory.ParkNameFor("finance", officerID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCreator(officerID, parkName)
}

// Update edits a pending request owned by the officer.
func (s *Service) Update(officerID, requestID int64, dto CreateRequestDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	request, err := s.repo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if request.CreatedBy != officerID {
		return nil, ErrRequestNotFound
	}
	if !request.CanBeReviewed() {
		return nil, ErrCannotModify
	}

	request.Title = dto.Title
	request.Description = dto.Description
	request.Amount = dto.Amount
	request.ParkName = dto.ParkName
	request.EmergencyType = dto.EmergencyType
	request.Justification = dto.Justification
	request.Timeframe = dto.Timeframe

	if err := s.repo.Update(request); err != nil {
		s.logger.Error("failed to update emergency request", "error", err, "request_id", requestID)
		return nil, err
	}
	return request, nil
}

// ListPending returns requests awaiting government review.
func (s *Service) ListPending() ([]*Request, error) {
	return s.repo.ListByStatus(StatusPending)
}

// ListAll returns every request regardless of status.
func (s *Service) ListAll() ([]*Request, error) {
	return s.repo.ListAll()
}

// Review applies a government decision with a mandatory reason.
func (s *Service) Review(reviewerID, requestID int64, dto ReviewDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	request, err := s.repo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if !request.CanBeReviewed() {
		return nil, ErrCannotModify
	}

	now := time.Now()
	reason := strings.TrimSpace(dto.Reason)
	request.Status = dto.Status
	request.Reason = &reason
	request.ReviewedBy = &reviewerID
	request.ReviewedDate = &now

	if err := s.repo.Review(request); err != nil {
		if err != ErrCannotModify {
			s.logger.Error("failed to review emergency request", "error", err, "request_id", requestID)
		}
		return nil, err
	}

	s.logger.Info("emergency request reviewed",
		"request_id", requestID,
		"reviewer_id", reviewerID,
		"status", dto.Status)

	return request, nil
}

package budget

import (
	"log/slog"
	"strings"
	"time"
)

type Repository interface {
	Create(b *Budget, items []Item) error
	GetByID(id int64) (*Budget, error)
	ListByCreator(creatorID int64) ([]*BudgetWithNames, error)
	ListByCreatorAndStatus(creatorID int64, status string) ([]*BudgetWithNames, error)
	ListByParkAndStatus(parkName, status string) ([]*BudgetWithNames, error)
	ListByStatus(status string) ([]*BudgetWithNames, error)
	ListAll() ([]*BudgetWithNames, error)
	ItemsByBudget(budgetIDs []int64) (map[int64][]Item, error)
	SumApprovedByCreator(creatorID int64) (float64, error)
	UpdateWithItems(b *Budget, items []Item) error
	Review(b *Budget) error
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

// Create inserts a budget in submitted status together with its items.
func (s *Service) Create(officerID int64, dto CreateBudgetDTO) (*Budget, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	b := &Budget{
		Title:       dto.Title,
		FiscalYear:  dto.FiscalYear,
		TotalAmount: dto.TotalAmount,
		ParkName:    dto.ParkName,
		Description: dto.Description,
		Status:      StatusSubmitted,
		CreatedBy:   officerID,
	}

	if err := s.repo.Create(b, dto.items(0)); err != nil {
		s.logger.Error("failed to create budget", "error", err, "officer_id", officerID)
		return nil, err
	}

	s.logger.Info("budget created",
		"budget_id", b.ID,
		"park", b.ParkName,
		"fiscal_year", b.FiscalYear,
		"total_amount", b.TotalAmount)

	return b, nil
}

// ListForOfficer returns all budgets the officer created, any status.
func (s *Service) ListForOfficer(officerID int64) ([]*BudgetResponse, error) {
	budgets, err := s.repo.ListByCreator(officerID)
	if err != nil {
		return nil, err
	}
	return s.withItems(budgets)
}

// ListPendingForOfficer returns submitted budgets for the officer's park.
func (s *Service) ListPendingForOfficer(officerID int64) ([]*BudgetResponse, error) {
	parkName, err := s.directory.ParkNameFor("finance", officerID)
	if err != nil {
		return nil, err
	}
	budgets, err := s.repo.ListByParkAndStatus(parkName, StatusSubmitted)
	if err != nil {
		return nil, err
	}
	return s.withItems(budgets)
}

// ListApprovedForOfficer returns the officer's approved budgets.
func (s *Service) ListApprovedForOfficer(officerID int64) ([]*BudgetResponse, error) {
	budgets, err := s.repo.ListByCreatorAndStatus(officerID, StatusApproved)
	if err != nil {
		return nil, err
	}
	return s.withItems(budgets)
}

// ListRejectedForOfficer returns the officer's rejected budgets.
func (s *Service) ListRejectedForOfficer(officerID int64) ([]*BudgetResponse, error) {
	budgets, err := s.repo.ListByCreatorAndStatus(officerID, StatusRejected)
	if err != nil {
		return nil, err
	}
	return s.withItems(budgets)
}

// ApprovedTotal sums the approved budget amounts the officer created.
// Missing rows yield zero.
func (s *Service) ApprovedTotal(officerID int64) (float64, error) {
	return s.repo.SumApprovedByCreator(officerID)
}

// ListByStatus returns cross-park budgets filtered by status; an empty
// status returns everything.
func (s *Service) ListByStatus(status string) ([]*BudgetResponse, error) {
	var budgets []*BudgetWithNames
	var err error
	if status == "" {
		budgets, err = s.repo.ListAll()
	} else {
		budgets, err = s.repo.ListByStatus(status)
	}
	if err != nil {
		return nil, err
	}
	return s.withItems(budgets)
}

// Update rewrites a submitted budget's header and replaces its items.
func (s *Service) Update(budgetID int64, dto CreateBudgetDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	b, err := s.repo.GetByID(budgetID)
	if err != nil {
		return err
	}
	if !b.CanBeReviewed() {
		return ErrNotSubmitted
	}

	b.Title = dto.Title
	b.FiscalYear = dto.FiscalYear
	b.TotalAmount = dto.TotalAmount
	b.ParkName = dto.ParkName
	b.Description = dto.Description

	if err := s.repo.UpdateWithItems(b, dto.items(budgetID)); err != nil {
		s.logger.Error("failed to update budget", "error", err, "budget_id", budgetID)
		return err
	}

	s.logger.Info("budget updated", "budget_id", budgetID)
	return nil
}

// Decide approves or rejects a submitted budget with a mandatory reason.
func (s *Service) Decide(reviewerID, budgetID int64, dto DecisionDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	b, err := s.repo.GetByID(budgetID)
	if err != nil {
		return err
	}
	if !b.CanBeReviewed() {
		return ErrNotSubmitted
	}

	now := time.Now()
	reason := strings.TrimSpace(dto.Reason)
	b.Status = dto.Status
	b.Reason = &reason
	b.ApprovedBy = &reviewerID
	b.ApprovedAt = &now

	if err := s.repo.Review(b); err != nil {
		s.logger.Error("failed to review budget", "error", err, "budget_id", budgetID)
		return err
	}

	s.logger.Info("budget reviewed",
		"budget_id", budgetID,
		"reviewer_id", reviewerID,
		"status", dto.Status)

	return nil
}

func (s *Service) withItems(budgets []*BudgetWithNames) ([]*BudgetResponse, error) {
	ids := make([]int64, len(budgets))
	for i, b := range budgets {
		ids[i] = b.ID
	}

	itemsByBudget := map[int64][]Item{}
	if len(ids) > 0 {
		var err error
		itemsByBudget, err = s.repo.ItemsByBudget(ids)
		if err != nil {
			return nil, err
		}
	}

	responses := make([]*BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToResponse(b, itemsByBudget[b.ID])
	}
	return responses, nil
}

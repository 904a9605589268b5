package park

import (
	"log/slog"
)

type Repository interface {
	GetAll() ([]*Park, error)
	GetByName(name string) (*Park, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListParks() ([]*Park, error) {
	parks, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list parks", "error", err)
		return nil, err
	}
	return parks, nil
}

// IsValidPark reports whether a park with the given name exists. Lookup
// failures are treated as invalid rather than surfaced.
func (s *Service) IsValidPark(name string) bool {
	if name == "" {
		return false
	}
	p, err := s.repo.GetByName(name)
	if err != nil {
		s.logger.Warn("park lookup failed", "park", name, "error", err)
		return false
	}
	return p != nil
}

package report

import (
	"log/slog"
)

type Repository interface {
	InsertLoginLog(log *LoginLog) error
	RecentLogins(limit int) ([]*RecentLogin, error)
	LoginMetrics() ([]*MonthlyLogins, error)
	PlatformTotals() (*PlatformTotals, error)
	MonthlyTourBookings() ([]*MonthlyBookings, error)
	MonthlyTourRevenue() ([]*MonthlyBookings, error)
	MonthlyDonations() ([]*MonthlyDonations, error)
	ParkIncomeSums(parkName string) (donations, tours float64, err error)
	ParkExpenseSums(parkName string) (fundRequests, extraFunds, emergency float64, err error)
	ApprovedData() (map[string]interface{}, error)
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

func (s *Service) RecordLogin(email, role string) error {
	return s.repo.InsertLoginLog(&LoginLog{Email: email, Role: role})
}

func (s *Service) RecentLogins() ([]*RecentLogin, error) {
	return s.repo.RecentLogins(5)
}

func (s *Service) LoginMetrics() ([]*MonthlyLogins, error) {
	return s.repo.LoginMetrics()
}

// AdminStats builds the admin dashboard tiles.
func (s *Service) AdminStats() ([]StatCard, error) {
	totals, err := s.repo.PlatformTotals()
	if err != nil {
		return nil, err
	}
	return []StatCard{
		{Title: "Total Tours Booked", Value: totals.TourBookings, Icon: "Calendar", Trend: "up"},
		{Title: "Total Donations", Value: totals.DonationTotal, Icon: "Cash", Trend: "up"},
		{Title: "Total Admins", Value: totals.AdminCount, Icon: "LogIn", Trend: "up"},
		{Title: "Recorded Park Staff", Value: totals.ParkStaffCount, Icon: "Users", Trend: "up"},
	}, nil
}

// OfficerCounts builds the admin officer-count tiles.
func (s *Service) OfficerCounts() ([]StatCard, error) {
	totals, err := s.repo.PlatformTotals()
	if err != nil {
		return nil, err
	}
	return []StatCard{
		{Title: "Finance Officers", Value: totals.FinanceCount, Icon: "Users", Trend: "neutral"},
		{Title: "Government Officers", Value: totals.GovernmentCount, Icon: "Users", Trend: "neutral"},
		{Title: "Auditors", Value: totals.AuditorCount, Icon: "Users", Trend: "neutral"},
		{Title: "Park Staff", Value: totals.ParkStaffCount, Icon: "Users", Trend: "neutral"},
	}, nil
}

// GovernmentStats builds the government dashboard tiles.
func (s *Service) GovernmentStats() ([]StatCard, error) {
	totals, err := s.repo.PlatformTotals()
	if err != nil {
		return nil, err
	}
	return []StatCard{
		{Title: "Total Revenue From Donations", Value: totals.DonationTotal, Icon: "DollarSign", Trend: "up"},
		{Title: "Total Revenue From Tours", Value: totals.TourRevenue, Icon: "Calendar", Trend: "up"},
		{Title: "Total Approved Budgets", Value: totals.ApprovedBudgets, Icon: "PiggyBank", Trend: "up"},
		{Title: "Emergency Requests", Value: totals.EmergencyRequests, Icon: "AlertTriangle", Trend: "up"},
	}, nil
}

// MonthlyTourBookings counts bookings per month of submission.
func (s *Service) MonthlyTourBookings() ([]*MonthlyBookings, error) {
	return s.repo.MonthlyTourBookings()
}

// MonthlyTourRevenue groups bookings by tour date with revenue sums.
func (s *Service) MonthlyTourRevenue() ([]*MonthlyBookings, error) {
	return s.repo.MonthlyTourRevenue()
}

func (s *Service) MonthlyDonations() ([]*MonthlyDonations, error) {
	return s.repo.MonthlyDonations()
}

// ParkIncome sums a park's donation and tour revenue and derives the
// government support so it lands at 15% of the final total.
func (s *Service) ParkIncome(parkName string) (*ParkIncome, error) {
	donations, tours, err := s.repo.ParkIncomeSums(parkName)
	if err != nil {
		return nil, err
	}
	base := donations + tours
	support := base * govSupportRate / (1 - govSupportRate)
	return &ParkIncome{
		Donations:         donations,
		Tours:             tours,
		GovernmentSupport: support,
		TotalIncome:       base + support,
	}, nil
}

// ParkExpenses sums a park's approved expenditure requests.
func (s *Service) ParkExpenses(parkName string) (*ParkExpenses, error) {
	fundRequests, extraFunds, emergency, err := s.repo.ParkExpenseSums(parkName)
	if err != nil {
		return nil, err
	}
	return &ParkExpenses{
		FundRequests:  fundRequests,
		ExtraFunds:    extraFunds,
		Emergency:     emergency,
		TotalExpenses: fundRequests + extraFunds + emergency,
	}, nil
}

// ApprovedData assembles the auditor's cross-domain export: every tour
// and donation plus all approved requests and budgets.
func (s *Service) ApprovedData() (map[string]interface{}, error) {
	data, err := s.repo.ApprovedData()
	if err != nil {
		s.logger.Error("failed to assemble approved data", "error", err)
		return nil, err
	}
	return data, nil
}

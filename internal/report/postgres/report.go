package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/budget"
	"github.com/parkconserve/park-management/internal/donation"
	"github.com/parkconserve/park-management/internal/emergency"
	"github.com/parkconserve/park-management/internal/extrafunds"
	"github.com/parkconserve/park-management/internal/fundrequest"
	"github.com/parkconserve/park-management/internal/report"
	"github.com/parkconserve/park-management/internal/tour"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) InsertLoginLog(log *report.LoginLog) error {
	if log.LoginTime.IsZero() {
		log.LoginTime = time.Now()
	}
	return r.db.Create(log).Error
}

func (r *ReportRepository) RecentLogins(limit int) ([]*report.RecentLogin, error) {
	var logins []*report.RecentLogin
	err := r.db.Table("login_logs").
		Select("email, role, login_time as last_login").
		Order("login_time desc").
		Limit(limit).
		Find(&logins).Error
	if err != nil {
		return nil, err
	}
	return logins, nil
}

func (r *ReportRepository) LoginMetrics() ([]*report.MonthlyLogins, error) {
	var metrics []*report.MonthlyLogins
	err := r.db.Raw(`
		SELECT to_char(login_time, 'Mon') AS month, count(*) AS logins
		FROM login_logs
		GROUP BY date_trunc('month', login_time), to_char(login_time, 'Mon')
		ORDER BY date_trunc('month', login_time)`).
		Scan(&metrics).Error
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

func (r *ReportRepository) PlatformTotals() (*report.PlatformTotals, error) {
	totals := &report.PlatformTotals{}

	if err := r.db.Table("tours").Count(&totals.TourBookings).Error; err != nil {
		return nil, err
	}
	if err := r.sum("tours", "", &totals.TourRevenue); err != nil {
		return nil, err
	}
	if err := r.sum("donations", "", &totals.DonationTotal); err != nil {
		return nil, err
	}
	if err := r.db.Table("admins").Count(&totals.AdminCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Table("park_staff").Count(&totals.ParkStaffCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Table("finance_officers").Count(&totals.FinanceCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Table("government_officers").Count(&totals.GovernmentCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Table("auditors").Count(&totals.AuditorCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Raw(
		`SELECT coalesce(sum(total_amount), 0) FROM budgets WHERE status = 'approved'`).
		Scan(&totals.ApprovedBudgets).Error; err != nil {
		return nil, err
	}
	if err := r.db.Table("emergency_requests").Count(&totals.EmergencyRequests).Error; err != nil {
		return nil, err
	}

	return totals, nil
}

func (r *ReportRepository) sum(table, where string, dst *float64) error {
	q := "SELECT coalesce(sum(amount), 0) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	return r.db.Raw(q).Scan(dst).Error
}

func (r *ReportRepository) MonthlyTourBookings() ([]*report.MonthlyBookings, error) {
	var bookings []*report.MonthlyBookings
	err := r.db.Raw(`
		SELECT to_char(created_at, 'Mon') AS month, count(*) AS bookings
		FROM tours
		GROUP BY date_trunc('month', created_at), to_char(created_at, 'Mon')
		ORDER BY date_trunc('month', created_at)`).
		Scan(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *ReportRepository) MonthlyTourRevenue() ([]*report.MonthlyBookings, error) {
	var bookings []*report.MonthlyBookings
	err := r.db.Raw(`
		SELECT to_char(date, 'Mon') AS month, count(*) AS bookings,
		       coalesce(sum(amount), 0) AS revenue
		FROM tours
		GROUP BY date_trunc('month', date), to_char(date, 'Mon')
		ORDER BY date_trunc('month', date)`).
		Scan(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *ReportRepository) MonthlyDonations() ([]*report.MonthlyDonations, error) {
	var donations []*report.MonthlyDonations
	err := r.db.Raw(`
		SELECT to_char(created_at, 'Mon') AS month, count(*) AS count,
		       coalesce(sum(amount), 0) AS amount
		FROM donations
		GROUP BY date_trunc('month', created_at), to_char(created_at, 'Mon')
		ORDER BY date_trunc('month', created_at)`).
		Scan(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *ReportRepository) ParkIncomeSums(parkName string) (float64, float64, error) {
	var donations, tours float64
	err := r.db.Raw(
		`SELECT coalesce(sum(amount), 0) FROM donations WHERE park_name = ?`, parkName).
		Scan(&donations).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.db.Raw(
		`SELECT coalesce(sum(amount), 0) FROM tours WHERE park_name = ?`, parkName).
		Scan(&tours).Error
	if err != nil {
		return 0, 0, err
	}
	return donations, tours, nil
}

func (r *ReportRepository) ParkExpenseSums(parkName string) (float64, float64, float64, error) {
	var fundRequests, extraFunds, emergencySum float64
	err := r.db.Raw(
		`SELECT coalesce(sum(amount), 0) FROM fund_requests WHERE parkname = ? AND status = 'approved'`, parkName).
		Scan(&fundRequests).Error
	if err != nil {
		return 0, 0, 0, err
	}
	err = r.db.Raw(
		`SELECT coalesce(sum(amount), 0) FROM extra_funds_requests WHERE park_name = ? AND status = 'approved'`, parkName).
		Scan(&extraFunds).Error
	if err != nil {
		return 0, 0, 0, err
	}
	err = r.db.Raw(
		`SELECT coalesce(sum(amount), 0) FROM emergency_requests WHERE park_name = ? AND status = 'approved'`, parkName).
		Scan(&emergencySum).Error
	if err != nil {
		return 0, 0, 0, err
	}
	return fundRequests, extraFunds, emergencySum, nil
}

// ApprovedData loads the cross-domain export in one place: full tour
// and donation histories plus every approved request and budget.
func (r *ReportRepository) ApprovedData() (map[string]interface{}, error) {
	var tours []*tour.Booking
	if err := r.db.Order("created_at desc").Find(&tours).Error; err != nil {
		return nil, err
	}

	var donations []*donation.Donation
	if err := r.db.Order("created_at desc").Find(&donations).Error; err != nil {
		return nil, err
	}

	var fundRequests []*fundrequest.FundRequestWithStaff
	err := r.db.Table("fund_requests").
		Select(`fund_requests.*, ps.first_name, ps.last_name, ps.email AS staff_email`).
		Joins("JOIN park_staff ps ON fund_requests.created_by = ps.id").
		Where("fund_requests.status = ?", "approved").
		Order("fund_requests.created_at desc").
		Find(&fundRequests).Error
	if err != nil {
		return nil, err
	}

	var extraRequests []*extrafunds.Request
	if err := r.db.Where("status = ?", extrafunds.StatusApproved).
		Order("created_at desc").Find(&extraRequests).Error; err != nil {
		return nil, err
	}

	var emergencyRequests []*emergency.Request
	if err := r.db.Where("status = ?", emergency.StatusApproved).
		Order("created_at desc").Find(&emergencyRequests).Error; err != nil {
		return nil, err
	}

	var budgets []*budget.BudgetWithNames
	err = r.db.Table("budgets").
		Select(`budgets.*, fo.first_name AS created_by_name, go.first_name AS approved_by_name`).
		Joins("LEFT JOIN finance_officers fo ON budgets.created_by = fo.id").
		Joins("LEFT JOIN government_officers go ON budgets.approved_by = go.id").
		Where("budgets.status = ?", budget.StatusApproved).
		Order("budgets.created_at desc").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	budgetIDs := make([]int64, len(budgets))
	for i, b := range budgets {
		budgetIDs[i] = b.ID
	}
	itemsByBudget := map[int64][]budget.Item{}
	if len(budgetIDs) > 0 {
		var items []budget.Item
		if err := r.db.Where("budget_id IN ?", budgetIDs).Order("id").Find(&items).Error; err != nil {
			return nil, err
		}
		for _, item := range items {
			itemsByBudget[item.BudgetID] = append(itemsByBudget[item.BudgetID], item)
		}
	}

	budgetResponses := make([]*budget.BudgetResponse, len(budgets))
	for i, b := range budgets {
		budgetResponses[i] = budget.ToResponse(b, itemsByBudget[b.ID])
	}

	return map[string]interface{}{
		"tours":                tours,
		"donations":            donations,
		"fund_requests":        fundRequests,
		"extra_funds_requests": extraRequests,
		"emergency_requests":   emergencyRequests,
		"budgets":              budgetResponses,
	}, nil
}

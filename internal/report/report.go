package report

import (
	"time"
)

// govSupportRate is the share of a park's total income contributed by
// the government. Support is derived so that it equals 15% of the final
// total: support = base * rate / (1 - rate).
const govSupportRate = 0.15

// LoginLog records one successful login. Rows are written by the event
// subscriber and feed the admin dashboard metrics.
type LoginLog struct {
	ID        int64     `gorm:"primaryKey"`
	Email     string    `gorm:"column:email"`
	Role      string    `gorm:"column:role"`
	LoginTime time.Time `gorm:"column:login_time"`
}

func (LoginLog) TableName() string {
	return "login_logs"
}

// StatCard is one tile of a dashboard stats row.
type StatCard struct {
	Title string      `json:"title"`
	Value interface{} `json:"value"`
	Icon  string      `json:"icon"`
	Trend string      `json:"trend"`
}

type RecentLogin struct {
	Email     string    `gorm:"column:email" json:"email"`
	Role      string    `gorm:"column:role" json:"role"`
	LastLogin time.Time `gorm:"column:last_login" json:"last_login"`
}

type MonthlyLogins struct {
	Month  string `gorm:"column:month" json:"month"`
	Logins int64  `gorm:"column:logins" json:"logins"`
}

type MonthlyBookings struct {
	Month    string  `gorm:"column:month" json:"month"`
	Bookings int64   `gorm:"column:bookings" json:"bookings"`
	Revenue  float64 `gorm:"column:revenue" json:"revenue,omitempty"`
}

type MonthlyDonations struct {
	Month  string  `gorm:"column:month" json:"month"`
	Count  int64   `gorm:"column:count" json:"count"`
	Amount float64 `gorm:"column:amount" json:"amount"`
}

type ParkIncome struct {
	Donations         float64 `json:"donations"`
	Tours             float64 `json:"tours"`
	GovernmentSupport float64 `json:"government_support"`
	TotalIncome       float64 `json:"total_income"`
}

type ParkExpenses struct {
	FundRequests  float64 `json:"fund_requests"`
	ExtraFunds    float64 `json:"extra_funds"`
	Emergency     float64 `json:"emergency"`
	TotalExpenses float64 `json:"total_expenses"`
}

// Totals collected for dashboard stat rows.
type PlatformTotals struct {
	TourBookings      int64
	TourRevenue       float64
	DonationTotal     float64
	AdminCount        int64
	ParkStaffCount    int64
	FinanceCount      int64
	GovernmentCount   int64
	AuditorCount      int64
	ApprovedBudgets   float64
	EmergencyRequests int64
}

package report

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/parkconserve/park-management/internal/transport"
	"github.com/parkconserve/park-management/pkg/logger"
)

type ServiceAPI interface {
	RecentLogins() ([]*RecentLogin, error)
	LoginMetrics() ([]*MonthlyLogins, error)
	AdminStats() ([]StatCard, error)
	OfficerCounts() ([]StatCard, error)
	GovernmentStats() ([]StatCard, error)
	MonthlyTourBookings() ([]*MonthlyBookings, error)
	MonthlyTourRevenue() ([]*MonthlyBookings, error)
	MonthlyDonations() ([]*MonthlyDonations, error)
	ParkIncome(parkName string) (*ParkIncome, error)
	ParkExpenses(parkName string) (*ParkExpenses, error)
	ApprovedData() (map[string]interface{}, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) RecentLogins(w http.ResponseWriter, r *http.Request) {
	logins, err := h.Service.RecentLogins()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"recent_logins": logins})
}

func (h *Handler) LoginMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Service.LoginMetrics()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"login_metrics": metrics})
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.AdminStats()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"stats": stats})
}

func (h *Handler) OfficerCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.OfficerCounts()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"officer_counts": counts})
}

func (h *Handler) GovernmentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GovernmentStats()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"stats": stats})
}

// AdminTourBookings serves the monthly booking-count series.
func (h *Handler) AdminTourBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.MonthlyTourBookings()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"tour_bookings": bookings})
}

// GovernmentTourBookings serves the monthly revenue series keyed by
// tour date.
func (h *Handler) GovernmentTourBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.MonthlyTourRevenue()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, bookings)
}

func (h *Handler) GovernmentDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.Service.MonthlyDonations()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, donations)
}

func (h *Handler) ParkIncome(w http.ResponseWriter, r *http.Request) {
	income, err := h.Service.ParkIncome(chi.URLParam(r, "parkName"))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, income)
}

func (h *Handler) ParkExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Service.ParkExpenses(chi.URLParam(r, "parkName"))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, expenses)
}

func (h *Handler) AllApprovedData(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.ApprovedData()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, data)
}

package donation

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/transport"
	"github.com/parkconserve/park-management/pkg/logger"
)

type ServiceAPI interface {
	CreateDonation(dto CreateDonationDTO) (*Donation, error)
	ListByPark(parkName string) ([]*Donation, error)
	ListAllWithPayments() ([]*DonationWithPayment, error)
}

// ParkResolver maps an authenticated officer to their park.
type ParkResolver interface {
	ParkNameFor(role string, userID int64) (string, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Parks   ParkResolver
}

func NewHandler(svc ServiceAPI, parks ParkResolver) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
		Parks:       parks,
	}
}

// Donate handles the public donation form.
func (h *Handler) Donate(w http.ResponseWriter, r *http.Request) {
	var dto CreateDonationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	donation, err := h.Service.CreateDonation(dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Donation recorded successfully",
		"id":      donation.ID,
	})
}

// FinanceDonations lists donations for the finance officer's park.
func (h *Handler) FinanceDonations(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseInt(internal.UserIDFromContext(r.Context()), 10, 64)
	parkName, err := h.Parks.ParkNameFor(internal.RoleFromContext(r.Context()), userID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	donations, err := h.Service.ListByPark(parkName)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponseSlice(donations))
}

// AdminDonations lists all donations joined with payment details.
func (h *Handler) AdminDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.Service.ListAllWithPayments()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, donations)
}

package tour

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
	BookTour(dto BookTourDTO) (*Booking, error)
	ListByPark(parkName string) ([]*Booking, error)
	ListAll() ([]*Booking, error)
}

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

// BookTour handles the public booking form.
func (h *Handler) BookTour(w http.ResponseWriter, r *http.Request) {
	var dto BookTourDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := h.Service.BookTour(dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Tour booked successfully",
		"details": map[string]interface{}{
			"park":    booking.ParkName,
			"purpose": booking.TourName,
			"date":    internal.FormatDate(booking.Date),
			"time":    booking.Time,
			"guests":  booking.Guests,
			"amount":  booking.Amount,
			"status":  booking.Status,
		},
	})
}

// FinanceTours lists bookings for the finance officer's park.
func (h *Handler) FinanceTours(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseInt(internal.UserIDFromContext(r.Context()), 10, 64)
	parkName, err := h.Parks.ParkNameFor(internal.RoleFromContext(r.Context()), userID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	bookings, err := h.Service.ListByPark(parkName)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponseSlice(bookings))
}

package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/transport"
	"github.com/parkconserve/park-management/pkg/logger"
)

type ServiceAPI interface {
	ProcessPayment(ctx context.Context, dto ProcessPaymentDTO) (*Payment, error)
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

// ProcessPayment handles the public checkout for donations and tours.
func (h *Handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var dto ProcessPaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, err := h.Service.ProcessPayment(r.Context(), dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ProcessPaymentResponse{
		Message:       "Payment processed successfully",
		TransactionID: payment.TransactionID,
		Status:        payment.Status,
		Date:          internal.FormatDateTime(payment.CreatedAt),
	})
}

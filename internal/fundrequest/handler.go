package fundrequest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/transport"
	"github.com/parkconserve/park-management/pkg/logger"
)

type ServiceAPI interface {
	Create(staffID int64, dto CreateFundRequestDTO) (*FundRequest, error)
	ListForStaff(staffID int64) ([]*FundRequest, error)
	Update(staffID, requestID int64, dto UpdateFundRequestDTO) (*FundRequest, error)
	Delete(staffID, requestID int64) error
	StatsForStaff(staffID int64) (*Stats, error)
	ListForFinance(officerID int64, status string) ([]*FundRequestWithStaff, error)
	Decide(officerID, requestID int64, status string) error
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateFundRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.Service.Create(currentUserID(r), dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Fund request created successfully",
		"id":      request.ID,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.ListForStaff(currentUserID(r))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, ToResponseSlice(requests))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var dto UpdateFundRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.Service.Update(currentUserID(r), requestID, dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Fund request updated successfully",
		"request": ToResponse(request),
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := h.Service.Delete(currentUserID(r), requestID); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Fund request deleted successfully",
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.StatsForStaff(currentUserID(r))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, stats)
}

// FinanceList returns the officer's park requests, optionally filtered with
// ?status=.
func (h *Handler) FinanceList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.ListForFinance(currentUserID(r), r.URL.Query().Get("status"))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) FinanceDecide(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Decide(currentUserID(r), requestID, dto.Status); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Fund request status updated successfully",
	})
}

func currentUserID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(internal.UserIDFromContext(r.Context()), 10, 64)
	return id
}

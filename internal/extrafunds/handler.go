package extrafunds

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
	Create(officerID int64, dto CreateRequestDTO) (*Request, error)
	ListForOfficer(officerID int64) ([]*Request, error)
	Update(officerID, requestID int64, dto CreateRequestDTO) (*Request, error)
	ListPending() ([]*Request, error)
	ListAll() ([]*Request, error)
	Review(reviewerID, requestID int64, dto ReviewDTO) (*Request, error)
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
	var dto CreateRequestDTO
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
		"message": "Extra funds request created successfully",
		"id":      request.ID,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.ListForOfficer(currentUserID(r))
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

	var dto CreateRequestDTO
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
		"message": "Extra funds request updated successfully",
		"request": ToResponse(request),
	})
}

func (h *Handler) GovernmentPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.ListPending()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, ToResponseSlice(requests))
}

func (h *Handler) GovernmentAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.ListAll()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, ToResponseSlice(requests))
}

func (h *Handler) GovernmentReview(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var dto ReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.Service.Review(currentUserID(r), requestID, dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Extra funds request reviewed successfully",
		"request": ToResponse(request),
	})
}

func currentUserID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(internal.UserIDFromContext(r.Context()), 10, 64)
	return id
}

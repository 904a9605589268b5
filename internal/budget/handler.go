package budget

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/transport"
	"github.com/parkconserve/park-management/pkg/logger"
)

type ServiceAPI interface {
	Create(officerID int64, dto CreateBudgetDTO) (*Budget, error)
	ListForOfficer(officerID int64) ([]*BudgetResponse, error)
	ListPendingForOfficer(officerID int64) ([]*BudgetResponse, error)
	ListApprovedForOfficer(officerID int64) ([]*BudgetResponse, error)
	ListRejectedForOfficer(officerID int64) ([]*BudgetResponse, error)
	ApprovedTotal(officerID int64) (float64, error)
	ListByStatus(status string) ([]*BudgetResponse, error)
	Update(budgetID int64, dto CreateBudgetDTO) error
	Decide(reviewerID, budgetID int64, dto DecisionDTO) error
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
	var dto CreateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.Create(currentUserID(r), dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Budget created successfully",
		"id":      b.ID,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.Service.ListForOfficer(currentUserID(r))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, budgets)
}

func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.Service.ListPendingForOfficer(currentUserID(r))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, budgets)
}

func (h *Handler) NewlyApproved(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.Service.ListApprovedForOfficer(currentUserID(r))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, budgets)
}

func (h *Handler) Rejected(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.Service.ListRejectedForOfficer(currentUserID(r))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, budgets)
}

// ApprovedTotal returns the sum of the officer's approved budgets.
func (h *Handler) ApprovedTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.Service.ApprovedTotal(currentUserID(r))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]float64{"total_approved_amount": total})
}

// GovernmentAll lists every budget across all parks.
func (h *Handler) GovernmentAll(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.Service.ListByStatus("")
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, budgets)
}

func (h *Handler) GovernmentApproved(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.Service.ListByStatus(StatusApproved)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, budgets)
}

func (h *Handler) GovernmentRejected(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.Service.ListByStatus(StatusRejected)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, budgets)
}

// GovernmentUpdate rewrites a submitted budget, replacing its items.
func (h *Handler) GovernmentUpdate(w http.ResponseWriter, r *http.Request) {
	budgetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid budget id")
		return
	}

	var dto CreateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Update(budgetID, dto); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Budget updated successfully"})
}

// GovernmentDecide approves or rejects a submitted budget.
func (h *Handler) GovernmentDecide(w http.ResponseWriter, r *http.Request) {
	budgetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid budget id")
		return
	}

	var dto DecisionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Decide(currentUserID(r), budgetID, dto); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Budget %s successfully", dto.Status),
	})
}

func currentUserID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(internal.UserIDFromContext(r.Context()), 10, 64)
	return id
}

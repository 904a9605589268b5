package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/parkconserve/park-management/internal/transport"
	"github.com/parkconserve/park-management/pkg/logger"
)

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

// Login handles the shared staff login that searches role tables in order.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Login(r.Context(), dto)
	if err != nil {
		h.Logger.Warn("staff login failed", "email", dto.Email, "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

// AdminLogin authenticates against the admin table only.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.loginAs(w, r, RoleAdmin)
}

// VisitorLogin authenticates against the visitor table only.
func (h *Handler) VisitorLogin(w http.ResponseWriter, r *http.Request) {
	h.loginAs(w, r, RoleVisitor)
}

func (h *Handler) loginAs(w http.ResponseWriter, r *http.Request, role Role) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.LoginAs(r.Context(), role, dto)
	if err != nil {
		h.Logger.Warn("login failed", "role", role, "email", dto.Email, "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

// VisitorRegister creates a visitor account.
func (h *Handler) VisitorRegister(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.Service.RegisterVisitor(r.Context(), dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Registration successful",
		"user":    account,
	})
}

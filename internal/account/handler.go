package account

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/auth"
	"github.com/parkconserve/park-management/internal/transport"
	"github.com/parkconserve/park-management/pkg/logger"
)

type ServiceAPI interface {
	ListParkStaff() ([]*StaffMember, error)
	AddParkStaff(dto CreateParkStaffDTO) (*auth.Account, error)
	UpdateParkStaff(staffID int64, dto UpdateStaffDTO) error
	SetStaffPassword(role auth.Role, staffID int64, password string) error
	AddStaff(dto CreateStaffDTO) (*auth.Account, error)
	ListStaff() ([]*StaffMember, error)
	UpdateStaff(roleLabel string, staffID int64, dto UpdateStaffDTO) error
	DeleteStaff(roleLabel string, staffID int64) error
	Profile(role auth.Role, userID int64) (*ProfileResponse, error)
	UpdateProfile(role auth.Role, userID int64, dto UpdateProfileDTO) error
	ChangePassword(role auth.Role, userID int64, dto ChangePasswordDTO) error
	SaveAvatar(role auth.Role, userID int64, fh *multipart.FileHeader) (string, error)
	DeleteAccount(role auth.Role, userID int64) error
	VisitorUpdateProfile(visitorID int64, dto UpdateProfileDTO) (bool, error)
	VisitorData(visitorID int64) (*VisitorData, error)
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

// ListParkStaff serves the admin park-staff table.
func (h *Handler) ListParkStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.Service.ListParkStaff()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, ToStaffResponseSlice(staff))
}

func (h *Handler) AddParkStaff(w http.ResponseWriter, r *http.Request) {
	var dto CreateParkStaffDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.Service.AddParkStaff(dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Park staff added successfully",
		"id":      account.ID,
	})
}

func (h *Handler) UpdateParkStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	var dto UpdateStaffDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateParkStaff(staffID, dto); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Park staff updated successfully",
		"id":      staffID,
	})
}

func (h *Handler) UpdateParkStaffPassword(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Password == "" {
		h.WriteError(w, http.StatusBadRequest, "Password is required")
		return
	}

	if err := h.Service.SetStaffPassword(auth.RoleParkStaff, staffID, body.Password); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

func (h *Handler) DeleteParkStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	if err := h.Service.DeleteStaff("park-staff", staffID); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Park staff deleted successfully"})
}

func (h *Handler) AddStaff(w http.ResponseWriter, r *http.Request) {
	var dto CreateStaffDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.Service.AddStaff(dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Staff member added successfully",
		"id":      account.ID,
	})
}

func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.Service.ListStaff()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, ToStaffResponseSlice(staff))
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	role := r.URL.Query().Get("role")
	if role == "" {
		h.WriteError(w, http.StatusBadRequest, "Role parameter is required")
		return
	}

	var dto UpdateStaffDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateStaff(role, staffID, dto); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Staff member updated successfully",
		"id":      staffID,
	})
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	role := r.URL.Query().Get("role")
	if role == "" {
		h.WriteError(w, http.StatusBadRequest, "Role parameter is required")
		return
	}

	if err := h.Service.DeleteStaff(role, staffID); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Staff member deleted successfully"})
}

// Profile serves the caller's own account for the given role group.
func (h *Handler) Profile(role auth.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.Service.Profile(role, currentUserID(r))
		if err != nil {
			h.WriteServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, profile)
	}
}

func (h *Handler) UpdateProfile(role auth.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dto UpdateProfileDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := h.Service.UpdateProfile(role, currentUserID(r), dto); err != nil {
			h.WriteServiceError(w, err)
			return
		}

		h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Profile updated successfully"})
	}
}

func (h *Handler) ChangePassword(role auth.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dto ChangePasswordDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := h.Service.ChangePassword(role, currentUserID(r), dto); err != nil {
			h.WriteServiceError(w, err)
			return
		}

		h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
	}
}

func (h *Handler) UploadAvatar(role auth.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		_, fh, err := r.FormFile("avatar")
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "No avatar file provided")
			return
		}

		url, err := h.Service.SaveAvatar(role, currentUserID(r), fh)
		if err != nil {
			h.WriteServiceError(w, err)
			return
		}

		h.WriteJSON(w, http.StatusOK, map[string]string{
			"message":   "Avatar updated successfully",
			"avatarUrl": url,
		})
	}
}

func (h *Handler) DeleteAccount(role auth.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.Service.DeleteAccount(role, currentUserID(r)); err != nil {
			h.WriteServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
	}
}

// VisitorProfile serves the logged-in visitor's details.
func (h *Handler) VisitorProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.Profile(auth.RoleVisitor, currentUserID(r))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]string{
			"id":        profile.ID,
			"firstName": profile.FirstName,
			"lastName":  profile.LastName,
			"email":     profile.Email,
		},
	})
}

func (h *Handler) VisitorUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	passwordUpdated, err := h.Service.VisitorUpdateProfile(currentUserID(r), dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":         "Profile updated successfully",
		"passwordUpdated": passwordUpdated,
	})
}

// VisitorData returns all donations, tours and service applications
// tied to the visitor's email.
func (h *Handler) VisitorData(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.VisitorData(currentUserID(r))
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, data)
}

func currentUserID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(internal.UserIDFromContext(r.Context()), 10, 64)
	return id
}

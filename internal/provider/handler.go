package provider

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/parkconserve/park-management/internal/transport"
	"github.com/parkconserve/park-management/pkg/logger"
)

const maxApplicationSize = 10 << 20

type ServiceAPI interface {
	Apply(dto ApplyDTO, registration, letter *multipart.FileHeader) (*Application, error)
	ListAll() ([]*Application, error)
	UpdateStatus(id int64, status string) error
	CountByStatus() ([]*StatusCount, error)
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

// Apply handles the public multipart application form.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxApplicationSize); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	dto := ApplyDTO{
		FirstName:       r.FormValue("firstName"),
		LastName:        r.FormValue("lastName"),
		Email:           r.FormValue("email"),
		Phone:           r.FormValue("phone"),
		CompanyType:     r.FormValue("companyType"),
		ProvidedService: r.FormValue("providedService"),
		CompanyName:     r.FormValue("companyName"),
		TaxID:           r.FormValue("taxId"),
	}

	registration := formFile(r, "companyRegistration")
	letter := formFile(r, "applicationLetter")

	if _, err := h.Service.Apply(dto, registration, letter); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Service application submitted successfully",
	})
}

// ListApplications serves finance, admin and government listings.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Service.ListAll()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, ToResponseSlice(apps))
}

// UpdateStatus lets finance approve or reject an application.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateStatus(id, dto.Status); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Service status updated successfully",
	})
}

// StatusChart returns per-status application counts for government
// dashboards.
func (h *Handler) StatusChart(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.CountByStatus()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, counts)
}

// GovernmentOverview combines the full application list with per-status
// counts shaped for the dashboard chart.
func (h *Handler) GovernmentOverview(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Service.ListAll()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	counts, err := h.Service.CountByStatus()
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	statusCounts := map[string]int64{
		StatusPending:  0,
		StatusApproved: 0,
		StatusRejected: 0,
	}
	for _, c := range counts {
		statusCounts[c.Status] = c.Count
	}

	chartData := []map[string]interface{}{
		{"status": "Pending", "count": statusCounts[StatusPending]},
		{"status": "Approved", "count": statusCounts[StatusApproved]},
		{"status": "Rejected", "count": statusCounts[StatusRejected]},
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"services":          ToResponseSlice(apps),
		"chartData":         chartData,
		"totalApplications": len(apps),
		"statusCounts":      statusCounts,
	})
}

func formFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

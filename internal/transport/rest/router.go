package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/parkconserve/park-management/internal/account"
	"github.com/parkconserve/park-management/internal/auth"
	"github.com/parkconserve/park-management/internal/budget"
	"github.com/parkconserve/park-management/internal/donation"
	"github.com/parkconserve/park-management/internal/emergency"
	"github.com/parkconserve/park-management/internal/extrafunds"
	"github.com/parkconserve/park-management/internal/fundrequest"
	"github.com/parkconserve/park-management/internal/park"
	"github.com/parkconserve/park-management/internal/payment"
	"github.com/parkconserve/park-management/internal/provider"
	"github.com/parkconserve/park-management/internal/report"
	"github.com/parkconserve/park-management/internal/tour"
	"github.com/parkconserve/park-management/internal/transport/middleware"
	"github.com/parkconserve/park-management/internal/transport/swagger"
)

// Handlers groups every domain handler the router mounts.
type Handlers struct {
	Auth        *auth.Handler
	Account     *account.Handler
	Donation    *donation.Handler
	Tour        *tour.Handler
	Provider    *provider.Handler
	Payment     *payment.Handler
	FundRequest *fundrequest.Handler
	Emergency   *emergency.Handler
	ExtraFunds  *extrafunds.Handler
	Budget      *budget.Handler
	Report      *report.Handler
	Park        *park.Handler
}

// RegisterAllRoutes mounts the full API surface. Public intake and login
// endpoints stay open; everything else sits behind the Authenticator
// with per-subtree role guards.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, authService auth.ServiceAPI, allowedOrigins, uploadsDir string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	// Stored avatars and application documents.
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Public intake and session endpoints.
		r.Post("/login", h.Auth.Login)
		r.Post("/admin/login", h.Auth.AdminLogin)
		r.Post("/visitor/login", h.Auth.VisitorLogin)
		r.Post("/visitor/register", h.Auth.VisitorRegister)
		r.Post("/donate", h.Donation.Donate)
		r.Post("/book-tour", h.Tour.BookTour)
		r.Post("/services", h.Provider.Apply)
		r.Post("/process_payment", h.Payment.ProcessPayment)
		r.Get("/parks", h.Park.GetParks)

		r.Group(func(pr chi.Router) {
			pr.Use(middleware.Authenticator(authService))

			// Admin surface.
			pr.Group(func(ar chi.Router) {
				ar.Use(middleware.RequireRole(auth.RoleAdmin))

				ar.Get("/park-staff", h.Account.ListParkStaff)
				ar.Post("/park-staff", h.Account.AddParkStaff)
				ar.Put("/park-staff/{id}", h.Account.UpdateParkStaff)
				ar.Put("/park-staff/password/{id}", h.Account.UpdateParkStaffPassword)
				ar.Delete("/park-staff/{id}", h.Account.DeleteParkStaff)

				ar.Get("/staff", h.Account.ListStaff)
				ar.Post("/staff", h.Account.AddStaff)
				ar.Put("/staff/{id}", h.Account.UpdateStaff)
				ar.Delete("/staff/{id}", h.Account.DeleteStaff)

				ar.Get("/admin/tour-bookings", h.Report.AdminTourBookings)
				ar.Get("/admin/donations", h.Donation.AdminDonations)
				ar.Get("/admin/services", h.Provider.ListApplications)
				ar.Get("/admin/recent-logins", h.Report.RecentLogins)
				ar.Get("/admin/login-metrics", h.Report.LoginMetrics)
				ar.Get("/admin/stats", h.Report.AdminStats)
				ar.Get("/admin/officer-counts", h.Report.OfficerCounts)

				ar.Put("/admin/profile", h.Account.UpdateProfile(auth.RoleAdmin))
				ar.Post("/admin/avatar", h.Account.UploadAvatar(auth.RoleAdmin))
				ar.Put("/admin/password", h.Account.ChangePassword(auth.RoleAdmin))
				ar.Delete("/admin/account", h.Account.DeleteAccount(auth.RoleAdmin))
			})

			// Park-staff surface.
			pr.Group(func(sr chi.Router) {
				sr.Use(middleware.RequireRole(auth.RoleParkStaff))

				sr.Post("/fund-requests", h.FundRequest.Create)
				sr.Get("/fund-requests", h.FundRequest.List)
				sr.Put("/fund-requests/{id}", h.FundRequest.Update)
				sr.Delete("/fund-requests/{id}", h.FundRequest.Delete)
				sr.Get("/park-staff/fund-request-stats", h.FundRequest.Stats)

				sr.Get("/parkstaff/profile", h.Account.Profile(auth.RoleParkStaff))
				sr.Put("/parkstaff/profile", h.Account.UpdateProfile(auth.RoleParkStaff))
				sr.Put("/parkstaff/password", h.Account.ChangePassword(auth.RoleParkStaff))
				sr.Delete("/parkstaff/account", h.Account.DeleteAccount(auth.RoleParkStaff))
			})

			// Finance surface.
			pr.Group(func(fr chi.Router) {
				fr.Use(middleware.RequireRole(auth.RoleFinance))

				fr.Get("/finance/tours", h.Tour.FinanceTours)
				fr.Get("/finance/donations", h.Donation.FinanceDonations)
				fr.Get("/finance/services", h.Provider.ListApplications)
				fr.Put("/finance/services/{id}/status", h.Provider.UpdateStatus)
				fr.Get("/finance/fund-requests", h.FundRequest.FinanceList)
				fr.Put("/finance/fund-requests/{id}/status", h.FundRequest.FinanceDecide)

				fr.Post("/finance/emergency-requests", h.Emergency.Create)
				fr.Get("/finance/emergency-requests", h.Emergency.List)
				fr.Put("/finance/emergency-requests/{id}", h.Emergency.Update)

				fr.Post("/finance/extra-funds", h.ExtraFunds.Create)
				fr.Get("/finance/extra-funds", h.ExtraFunds.List)
				fr.Put("/finance/extra-funds/{id}", h.ExtraFunds.Update)

				fr.Get("/finance/budgets", h.Budget.List)
				fr.Post("/finance/budgets", h.Budget.Create)
				fr.Get("/finance/budgets/approved", h.Budget.ApprovedTotal)
				fr.Get("/finance/budgets/pending", h.Budget.Pending)
				fr.Get("/finance/budgets/newlyapproved", h.Budget.NewlyApproved)
				fr.Get("/finance/budgets/rejected", h.Budget.Rejected)

				fr.Get("/finance/all-approved-data", h.Report.AllApprovedData)

				fr.Get("/finance/profile", h.Account.Profile(auth.RoleFinance))
				fr.Put("/finance/profile", h.Account.UpdateProfile(auth.RoleFinance))
				fr.Post("/finance/avatar", h.Account.UploadAvatar(auth.RoleFinance))
				fr.Put("/finance/password", h.Account.ChangePassword(auth.RoleFinance))
				fr.Delete("/finance/account", h.Account.DeleteAccount(auth.RoleFinance))
			})

			// Government surface.
			pr.Group(func(gr chi.Router) {
				gr.Use(middleware.RequireRole(auth.RoleGovernment))

				gr.Get("/government/emergency-requests", h.Emergency.GovernmentPending)
				gr.Get("/government/allemergency-requests", h.Emergency.GovernmentAll)
				gr.Put("/government/emergency-requests/{id}/status", h.Emergency.GovernmentReview)

				gr.Get("/government/extra-funds", h.ExtraFunds.GovernmentPending)
				gr.Put("/government/extra-funds/{id}/status", h.ExtraFunds.GovernmentReview)

				gr.Get("/government/budgets", h.Budget.GovernmentAll)
				gr.Get("/government/allbudgets", h.Budget.GovernmentAll)
				gr.Get("/government/budgets/approved", h.Budget.GovernmentApproved)
				gr.Get("/government/budgets/allapproved", h.Budget.GovernmentApproved)
				gr.Get("/government/budgets/rejected", h.Budget.GovernmentRejected)
				gr.Put("/government/budgets/{id}", h.Budget.GovernmentUpdate)
				gr.Put("/government/budgets/{id}/status", h.Budget.GovernmentDecide)

				gr.Get("/government/stats", h.Report.GovernmentStats)
				gr.Get("/government/tour-bookings", h.Report.GovernmentTourBookings)
				gr.Get("/government/donations", h.Report.GovernmentDonations)
				gr.Get("/government/services", h.Provider.GovernmentOverview)
				gr.Get("/government/park-income/{parkName}", h.Report.ParkIncome)
				gr.Get("/government/park-expenses/{parkName}", h.Report.ParkExpenses)

				gr.Get("/government/profile", h.Account.Profile(auth.RoleGovernment))
				gr.Put("/government/profile", h.Account.UpdateProfile(auth.RoleGovernment))
				gr.Put("/government/password", h.Account.ChangePassword(auth.RoleGovernment))
				gr.Delete("/government/account", h.Account.DeleteAccount(auth.RoleGovernment))
			})

			// Auditor surface.
			pr.Group(func(ur chi.Router) {
				ur.Use(middleware.RequireRole(auth.RoleAuditor))

				ur.Get("/auditor/profile", h.Account.Profile(auth.RoleAuditor))
				ur.Put("/auditor/profile", h.Account.UpdateProfile(auth.RoleAuditor))
				ur.Post("/auditor/avatar", h.Account.UploadAvatar(auth.RoleAuditor))
				ur.Put("/auditor/password", h.Account.ChangePassword(auth.RoleAuditor))
				ur.Delete("/auditor/account", h.Account.DeleteAccount(auth.RoleAuditor))
			})

			// Visitor surface.
			pr.Group(func(vr chi.Router) {
				vr.Use(middleware.RequireRole(auth.RoleVisitor))

				vr.Get("/visitor/profile", h.Account.VisitorProfile)
				vr.Put("/visitor/profile", h.Account.VisitorUpdateProfile)
				vr.Get("/visitor/data", h.Account.VisitorData)
			})
		})
	})
}

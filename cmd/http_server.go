package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/account"
	accountpg "github.com/parkconserve/park-management/internal/account/postgres"
	"github.com/parkconserve/park-management/internal/auth"
	authpg "github.com/parkconserve/park-management/internal/auth/postgres"
	"github.com/parkconserve/park-management/internal/budget"
	budgetpg "github.com/parkconserve/park-management/internal/budget/postgres"
	"github.com/parkconserve/park-management/internal/core/events"
	"github.com/parkconserve/park-management/internal/donation"
	donationpg "github.com/parkconserve/park-management/internal/donation/postgres"
	"github.com/parkconserve/park-management/internal/emergency"
	emergencypg "github.com/parkconserve/park-management/internal/emergency/postgres"
	"github.com/parkconserve/park-management/internal/extrafunds"
	extrafundspg "github.com/parkconserve/park-management/internal/extrafunds/postgres"
	"github.com/parkconserve/park-management/internal/fundrequest"
	fundrequestpg "github.com/parkconserve/park-management/internal/fundrequest/postgres"
	"github.com/parkconserve/park-management/internal/park"
	parkpg "github.com/parkconserve/park-management/internal/park/postgres"
	"github.com/parkconserve/park-management/internal/payment"
	paymentpg "github.com/parkconserve/park-management/internal/payment/postgres"
	"github.com/parkconserve/park-management/internal/provider"
	providerpg "github.com/parkconserve/park-management/internal/provider/postgres"
	"github.com/parkconserve/park-management/internal/report"
	reportpg "github.com/parkconserve/park-management/internal/report/postgres"
	"github.com/parkconserve/park-management/internal/tour"
	tourpg "github.com/parkconserve/park-management/internal/tour/postgres"
	"github.com/parkconserve/park-management/internal/transport/rest"
	"github.com/parkconserve/park-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to wire routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) error {
	cfg := deps.Config
	log := deps.Logger
	db := deps.GormDB

	eventBus := events.NewEventBus(log)

	tokens := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.TokenDuration)
	authService := auth.NewService(authpg.NewRepository(db), tokens, eventBus, log, cfg.Security.BCryptCost)

	parkService := park.NewService(parkpg.NewParkRepository(db), log)

	donationRepo := donationpg.NewDonationRepository(db)
	donationService := donation.NewService(donationRepo, parkService, log)

	tourRepo := tourpg.NewTourRepository(db)
	tourService := tour.NewService(tourRepo, parkService, log)

	providerRepo := providerpg.NewApplicationRepository(db)
	providerService := provider.NewService(providerRepo, cfg.Uploads.Dir, log)

	paymentService := payment.NewService(paymentpg.NewPaymentRepository(db), eventBus, log)

	accountService := account.NewService(
		accountpg.NewAccountRepository(db),
		donationRepo,
		tourRepo,
		providerRepo,
		cfg.Uploads.Dir,
		cfg.Security.BCryptCost,
		log,
	)

	// accountService doubles as the park directory for every service
	// that scopes data to an officer's park.
	fundRequestService := fundrequest.NewService(fundrequestpg.NewFundRequestRepository(db), accountService, log)
	emergencyService := emergency.NewService(emergencypg.NewRequestRepository(db), accountService, log)
	extraFundsService := extrafunds.NewService(extrafundspg.NewRequestRepository(db), accountService, log)
	budgetService := budget.NewService(budgetpg.NewBudgetRepository(db), accountService, log)

	reportService := report.NewService(reportpg.NewReportRepository(db), log)
	report.RegisterLoginRecorder(eventBus, reportService, log)

	handlers := rest.Handlers{
		Auth:        auth.NewHandler(authService),
		Account:     account.NewHandler(accountService),
		Donation:    donation.NewHandler(donationService, accountService),
		Tour:        tour.NewHandler(tourService, accountService),
		Provider:    provider.NewHandler(providerService),
		Payment:     payment.NewHandler(paymentService),
		FundRequest: fundrequest.NewHandler(fundRequestService),
		Emergency:   emergency.NewHandler(emergencyService),
		ExtraFunds:  extrafunds.NewHandler(extraFundsService),
		Budget:      budget.NewHandler(budgetService),
		Report:      report.NewHandler(reportService),
		Park:        park.NewHandler(parkService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, authService, cfg.Server.AllowedOrigins, cfg.Uploads.Dir, log)

	return nil
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm over existing connection: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

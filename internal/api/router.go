package api

import (
	"log/slog"
	"net/http"
	"time"

	"microloan-ledger/internal/api/handler"
	mw "microloan-ledger/internal/api/middleware"
	"microloan-ledger/internal/config"
	"microloan-ledger/internal/domain/borrower"
	"microloan-ledger/internal/domain/expense"
	"microloan-ledger/internal/domain/loan"
	"microloan-ledger/internal/domain/report"
	"microloan-ledger/internal/domain/request"

	_ "microloan-ledger/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Services bundles the domain services the router exposes.
type Services struct {
	Borrowers borrower.BorrowerService
	Requests  request.RequestService
	Loans     loan.LoanService
	Expenses  expense.ExpenseService
	Reports   report.ReportService
}

func SetupRouter(svcs Services, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupBorrowerRoutes(router, svcs.Borrowers, logger)
	setupRequestRoutes(router, svcs.Requests, logger)
	setupLoanRoutes(router, svcs.Loans, logger)
	setupExpenseRoutes(router, svcs.Expenses, logger)
	setupReportRoutes(router, svcs.Reports, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupBorrowerRoutes(router *chi.Mux, svc borrower.BorrowerService, logger *slog.Logger) {
	h := handler.NewBorrowerHandler(svc, logger)

	router.Route("/borrowers", func(r chi.Router) {
		r.Post("/", h.CreateBorrower)
		r.Get("/", h.ListBorrowers)
		r.Route("/{borrowerID}", func(r chi.Router) {
			r.Get("/", h.GetBorrower)
			r.Put("/deactivate", h.DeactivateBorrower)
			r.Put("/reactivate", h.ReactivateBorrower)
		})
	})
}

func setupRequestRoutes(router *chi.Mux, svc request.RequestService, logger *slog.Logger) {
	h := handler.NewRequestHandler(svc, logger)

	router.Route("/requests", func(r chi.Router) {
		r.Post("/", h.CreateRequest)
		r.Route("/{requestID}", func(r chi.Router) {
			r.Get("/", h.GetRequest)
			r.Post("/approve", h.ApproveRequest)
			r.Post("/reject", h.RejectRequest)
		})
	})
}

func setupLoanRoutes(router *chi.Mux, svc loan.LoanService, logger *slog.Logger) {
	h := handler.NewLoanHandler(svc, logger)

	router.Route("/loans", func(r chi.Router) {
		r.Get("/{loanID}", h.GetLoan)
		r.Get("/{loanID}/payments", h.GetPayments)
		r.Post("/{loanID}/payments", h.RegisterPayment)
		r.Get("/{loanID}/missed-days", h.GetMissedDays)
	})
}

func setupExpenseRoutes(router *chi.Mux, svc expense.ExpenseService, logger *slog.Logger) {
	h := handler.NewExpenseHandler(svc, logger)

	router.Route("/expenses", func(r chi.Router) {
		r.Post("/", h.CreateExpense)
		r.Get("/", h.ListExpenses)
	})
}

func setupReportRoutes(router *chi.Mux, svc report.ReportService, logger *slog.Logger) {
	h := handler.NewReportHandler(svc, logger)

	router.Route("/reports", func(r chi.Router) {
		r.Get("/cashflow", h.GetCashflow)
		r.Get("/balance", h.GetGlobalBalance)
	})
}

package http

import (
	"log/slog"

	"github.com/cmlabs-hris/palm-payroll-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Worker     WorkerHandler
	WorkLog    WorkLogHandler
	Payroll    PayrollHandler
	Settlement SettlementHandler
	Report     ReportHandler
	Statutory  StatutoryHandler
}

type RouterOptions struct {
	// JWTService enables token verification on /api/v1. Nil leaves the API open.
	JWTService     jwt.Service
	AllowedOrigins []string
	Logger         *slog.Logger
	LogLevel       slog.Level
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		if opts.JWTService != nil {
			r.Use(jwtauth.Verifier(opts.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
		}

		r.Route("/workers", func(r chi.Router) {
			r.Get("/", h.Worker.ListWorkers)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Worker.GetWorker)
				r.Get("/unsettled-logs", h.Worker.GetUnsettledLogs)
			})
		})

		r.Post("/work-logs", h.WorkLog.CreateWorkLog)

		r.Route("/payroll/runs", func(r chi.Router) {
			r.Post("/", h.Payroll.RunPayroll)
			r.Get("/", h.Payroll.ListRuns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Payroll.GetRun)
				r.Get("/payslips.pdf", h.Payroll.GetPayslipsPDF)
			})
		})

		r.Route("/payroll/allowances", func(r chi.Router) {
			r.Post("/", h.Payroll.CreateAllowance)
			r.Get("/", h.Payroll.ListAllowances)
		})

		r.Route("/settlements", func(r chi.Router) {
			r.Post("/", h.Settlement.Settle)
			r.Get("/", h.Settlement.ListSettlements)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Settlement.GetSettlement)
				r.Get("/pdf", h.Settlement.GetSettlementPDF)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/management", h.Report.GetManagementReport)
			r.Post("/management.pdf", h.Report.GetManagementReportPDF)
		})

		r.Get("/statutory/brackets", h.Statutory.ListBrackets)
	})

	return r
}

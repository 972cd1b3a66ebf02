package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/config"
	appHTTP "github.com/cmlabs-hris/palm-payroll-go/internal/handler/http"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/cron"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/palm-payroll-go/internal/repository/postgresql"
	payrollService "github.com/cmlabs-hris/palm-payroll-go/internal/service/payroll"
	reportService "github.com/cmlabs-hris/palm-payroll-go/internal/service/report"
	settlementService "github.com/cmlabs-hris/palm-payroll-go/internal/service/settlement"
	statutoryService "github.com/cmlabs-hris/palm-payroll-go/internal/service/statutory"
	workerService "github.com/cmlabs-hris/palm-payroll-go/internal/service/worker"
	worklogService "github.com/cmlabs-hris/palm-payroll-go/internal/service/worklog"
	"github.com/go-chi/httplog/v3"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "palm-payroll"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cal, err := calendar.New(cfg.App.Timezone)
	if err != nil {
		return err
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx, cfg.Database.MigrationsDir); err != nil {
		return err
	}

	// Repositories
	tx := postgresql.NewTransactor(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	customerRepo := postgresql.NewCustomerRepository(db)
	workLogRepo := postgresql.NewWorkLogRepository(db)
	bracketRepo := postgresql.NewBracketRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	if cfg.Payroll.BracketSeedPath != "" {
		if err := statutoryService.SeedSchedules(ctx, bracketRepo, cfg.Payroll.BracketSeedPath); err != nil {
			return err
		}
	}

	// Services
	taxPolicy, err := statutoryService.NewTaxPolicy(cfg.Payroll.PCBMethod)
	if err != nil {
		return err
	}
	calculator := statutoryService.NewDeductionCalculator(bracketRepo, taxPolicy)
	aggregator := worklogService.NewAggregator(workLogRepo)

	statutorySvc := statutoryService.NewStatutoryService(bracketRepo, taxPolicy)
	workerSvc := workerService.NewWorkerService(workerRepo)
	workLogSvc := worklogService.NewWorkLogService(workLogRepo, workerRepo, customerRepo, aggregator, cal)
	payrollSvc := payrollService.NewPayrollService(tx, payrollRepo, workerRepo, aggregator, calculator, cal)
	settlementSvc := settlementService.NewSettlementService(tx, settlementRepo, workerRepo, aggregator, calculator, cal)
	reportSvc := reportService.NewReportService(reportRepo, cal)

	// Scheduled jobs
	if cfg.Payroll.AutoRunSchedule != "" {
		scheduler := cron.NewScheduler(cal.Location(), 10*time.Minute)
		payrollJobs := cron.NewPayrollJobs(payrollSvc, cal, cfg.Payroll.AutoRunWorkerType)
		if err := payrollJobs.RegisterJobs(scheduler, cfg.Payroll.AutoRunSchedule); err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// HTTP
	var jwtService jwt.Service
	if cfg.JWT.Secret != "" {
		jwtService = jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	} else {
		slog.Warn("JWT_SECRET_KEY not set, API is unauthenticated")
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			JWTService:     jwtService,
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
			Logger:         logger,
			LogLevel:       cfg.SlogLevel(),
		},
		appHTTP.Handlers{
			Worker:     appHTTP.NewWorkerHandler(workerSvc, workLogSvc),
			WorkLog:    appHTTP.NewWorkLogHandler(workLogSvc),
			Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
			Settlement: appHTTP.NewSettlementHandler(settlementSvc),
			Report:     appHTTP.NewReportHandler(reportSvc),
			Statutory:  appHTTP.NewStatutoryHandler(statutorySvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", cfg.App.Timezone, "pcb_method", taxPolicy.Name())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/calendar"
)

const monthlyPayrollJob = "monthly_payroll_run"

type PayrollJobs struct {
	payrollService payroll.PayrollService
	calendar       *calendar.Calendar
	workerType     string
}

func NewPayrollJobs(payrollService payroll.PayrollService, cal *calendar.Calendar, workerType string) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		calendar:       cal,
		workerType:     workerType,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, spec string) error {
	return scheduler.AddJob(monthlyPayrollJob, spec, j.RunPreviousMonth)
}

// RunPreviousMonth runs payroll for the calendar month before today.
func (j *PayrollJobs) RunPreviousMonth(ctx context.Context) error {
	today := j.calendar.Today()
	period := today.AddDate(0, 0, -today.Day()+1).AddDate(0, -1, 0)

	run, err := j.payrollService.RunPayroll(ctx, payroll.RunPayrollRequest{
		Month:      int(period.Month()),
		Year:       period.Year(),
		WorkerType: j.workerType,
	})
	if err != nil {
		return fmt.Errorf("failed to run payroll for %d-%02d: %w", period.Year(), period.Month(), err)
	}

	slog.Info("Cron: Monthly payroll run created",
		"run_id", run.ID,
		"month", run.Month,
		"year", run.Year,
		"total_workers", run.Summary.TotalWorkers,
	)
	return nil
}

package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/report"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	calendar   *calendar.Calendar
}

func NewReportService(reportRepo report.ReportRepository, cal *calendar.Calendar) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		calendar:   cal,
	}
}

// GenerateManagementReport combines the period's payslips with the
// settlements paid out in the same calendar month.
func (s *ReportServiceImpl) GenerateManagementReport(ctx context.Context, req report.ManagementReportRequest) (report.ManagementReport, error) {
	if err := req.Validate(); err != nil {
		return report.ManagementReport{}, err
	}

	filter := worker.TypeFilter(req.WorkerType)
	if filter == "" {
		filter = worker.TypeFilterAll
	}
	workerType := filter.WorkerType()
	periodStart, periodEnd := calendar.MonthRange(req.Year, req.Month)

	var (
		rows        []report.PayslipRow
		settlements report.SettlementTotals
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rows, err = s.reportRepo.ListPeriodPayslips(gCtx, req.Month, req.Year, workerType)
		if err != nil {
			return fmt.Errorf("failed to get payslip data: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		settlements, err = s.reportRepo.SumSettlements(gCtx, periodStart, periodEnd, workerType)
		if err != nil {
			return fmt.Errorf("failed to get settlement data: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.ManagementReport{}, err
	}

	if rows == nil {
		rows = []report.PayslipRow{}
	}

	return report.ManagementReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: calendar.FormatDate(periodStart),
		PeriodEnd:   calendar.FormatDate(periodEnd),
		WorkerType:  string(filter),
		GeneratedAt: s.calendar.Now().Format(time.RFC3339),
		Payroll:     sumPayslips(rows),
		Settlements: settlements,
		Rows:        rows,
	}, nil
}

func sumPayslips(rows []report.PayslipRow) report.PayrollTotals {
	t := report.PayrollTotals{
		TotalTons:          decimal.Zero,
		TotalGrossPay:      decimal.Zero,
		TotalEPFEmployee:   decimal.Zero,
		TotalEPFEmployer:   decimal.Zero,
		TotalSOCSOEmployee: decimal.Zero,
		TotalSOCSOEmployer: decimal.Zero,
		TotalEISEmployee:   decimal.Zero,
		TotalEISEmployer:   decimal.Zero,
		TotalPCB:           decimal.Zero,
		TotalDeductions:    decimal.Zero,
		TotalNetPay:        decimal.Zero,
	}

	runs := make(map[string]struct{})
	for _, r := range rows {
		runs[r.RunID] = struct{}{}
		t.Payslips++
		t.TotalTons = t.TotalTons.Add(r.TotalTons)
		t.TotalGrossPay = t.TotalGrossPay.Add(r.GrossPay)
		t.TotalEPFEmployee = t.TotalEPFEmployee.Add(r.EPFEmployee)
		t.TotalEPFEmployer = t.TotalEPFEmployer.Add(r.EPFEmployer)
		t.TotalSOCSOEmployee = t.TotalSOCSOEmployee.Add(r.SOCSOEmployee)
		t.TotalSOCSOEmployer = t.TotalSOCSOEmployer.Add(r.SOCSOEmployer)
		t.TotalEISEmployee = t.TotalEISEmployee.Add(r.EISEmployee)
		t.TotalEISEmployer = t.TotalEISEmployer.Add(r.EISEmployer)
		t.TotalPCB = t.TotalPCB.Add(r.PCB)
		t.TotalDeductions = t.TotalDeductions.Add(r.TotalDeductions)
		t.TotalNetPay = t.TotalNetPay.Add(r.NetPay)
	}
	t.Runs = len(runs)

	return t
}

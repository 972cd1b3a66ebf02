package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/palm-payroll-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

type PayrollServiceImpl struct {
	tx          postgresql.Transactor
	payrollRepo payroll.PayrollRepository
	workerRepo  worker.WorkerRepository
	aggregator  worklog.Aggregator
	calculator  statutory.DeductionCalculator
	calendar    *calendar.Calendar
}

func NewPayrollService(
	tx postgresql.Transactor,
	payrollRepo payroll.PayrollRepository,
	workerRepo worker.WorkerRepository,
	aggregator worklog.Aggregator,
	calculator statutory.DeductionCalculator,
	cal *calendar.Calendar,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:          tx,
		payrollRepo: payrollRepo,
		workerRepo:  workerRepo,
		aggregator:  aggregator,
		calculator:  calculator,
		calendar:    cal,
	}
}

// ========== RUN ==========

// RunPayroll computes and stores one payslip per active worker matching the
// filter. Either every payslip and the run totals are written, or nothing is.
// Work logs are read only; a monthly run never settles them.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.PayrollRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRunResponse{}, err
	}
	if s.calendar.IsFuturePeriod(req.Year, req.Month) {
		return payroll.PayrollRunResponse{}, payroll.ErrFuturePeriod
	}

	filter := worker.TypeFilter(req.WorkerType)

	var (
		run      payroll.PayrollRun
		payslips []payroll.Payslip
	)
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		run, err = s.payrollRepo.CreateRun(txCtx, payroll.PayrollRun{
			Month:      req.Month,
			Year:       req.Year,
			WorkerType: filter,
		})
		if err != nil {
			return err
		}

		workers, err := s.workerRepo.ListActive(txCtx, filter)
		if err != nil {
			return err
		}

		totals := payroll.NewRunTotals()
		payslips = make([]payroll.Payslip, 0, len(workers))
		for _, w := range workers {
			p, err := s.computePayslip(txCtx, run.ID, w, req.Year, req.Month)
			if err != nil {
				return fmt.Errorf("worker %s: %w", w.ID, err)
			}

			created, err := s.payrollRepo.CreatePayslip(txCtx, p)
			if err != nil {
				return fmt.Errorf("worker %s: %w", w.ID, err)
			}
			created.Items = make([]payroll.PayslipItem, 0, len(p.Items))
			for _, item := range p.Items {
				item.PayslipID = created.ID
				stored, err := s.payrollRepo.CreatePayslipItem(txCtx, item)
				if err != nil {
					return fmt.Errorf("worker %s: %w", w.ID, err)
				}
				created.Items = append(created.Items, stored)
			}

			totals.Add(created)
			payslips = append(payslips, created)
		}

		if err := s.payrollRepo.UpdateRunTotals(txCtx, run.ID, totals); err != nil {
			return err
		}
		run.Totals = totals
		return nil
	})
	if err != nil {
		slog.Error("Payroll run failed", "month", req.Month, "year", req.Year, "worker_type", req.WorkerType, "error", err)
		return payroll.PayrollRunResponse{}, err
	}

	slog.Info("Payroll run completed",
		"run_id", run.ID,
		"month", run.Month,
		"year", run.Year,
		"worker_type", string(run.WorkerType),
		"workers", run.Totals.TotalWorkers,
		"total_net_pay", run.Totals.NetPay.StringFixed(2),
	)

	return ToRunResponse(run, payslips), nil
}

func (s *PayrollServiceImpl) computePayslip(ctx context.Context, runID string, w worker.Worker, year, month int) (payroll.Payslip, error) {
	agg, err := s.aggregator.Aggregate(ctx, w.ID, worklog.Monthly(year, month))
	if err != nil {
		return payroll.Payslip{}, err
	}

	items, err := s.allowanceItems(ctx, w, year, month)
	if err != nil {
		return payroll.Payslip{}, err
	}
	allowance := payroll.SumItems(items)
	gross := agg.GrossPay.Add(allowance)

	b, err := s.calculator.Compute(ctx, statutory.ProfileOf(w), gross)
	if err != nil {
		return payroll.Payslip{}, err
	}

	return payroll.Payslip{
		RunID:                      runID,
		WorkerID:                   w.ID,
		WorkerName:                 w.Name,
		WorkerType:                 w.Type,
		TotalTons:                  agg.TotalTons,
		BaseIncome:                 agg.GrossPay,
		TotalAllowance:             allowance,
		GrossPay:                   gross,
		Deductions:                 b,
		TotalDeductionNonStatutory: decimal.Zero,
		TotalDeductions:            b.TotalDeductions(),
		NetPay:                     b.NetPay(gross),
		Items:                      items,
	}, nil
}

// allowanceItems returns one item per manual allowance of a local worker.
// Foreign workers never receive allowances.
func (s *PayrollServiceImpl) allowanceItems(ctx context.Context, w worker.Worker, year, month int) ([]payroll.PayslipItem, error) {
	if w.Type != worker.WorkerTypeLocal {
		return nil, nil
	}

	allowances, err := s.payrollRepo.ListAllowances(ctx, payroll.AllowanceFilter{WorkerID: w.ID, Month: month, Year: year})
	if err != nil {
		return nil, err
	}

	items := make([]payroll.PayslipItem, 0, len(allowances))
	for _, a := range allowances {
		items = append(items, payroll.ItemFromAllowance(a))
	}
	return items, nil
}

// ========== READ ==========

func (s *PayrollServiceImpl) GetRun(ctx context.Context, id string) (payroll.PayrollRunResponse, error) {
	run, err := s.payrollRepo.GetRunByID(ctx, id)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	payslips, err := s.loadPayslips(ctx, run.ID)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return ToRunResponse(run, payslips), nil
}

// loadPayslips reads a run's payslips with their items attached.
func (s *PayrollServiceImpl) loadPayslips(ctx context.Context, runID string) ([]payroll.Payslip, error) {
	payslips, err := s.payrollRepo.ListPayslipsByRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	items, err := s.payrollRepo.ListPayslipItemsByRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	byPayslip := make(map[string][]payroll.PayslipItem, len(payslips))
	for _, it := range items {
		byPayslip[it.PayslipID] = append(byPayslip[it.PayslipID], it)
	}
	for i := range payslips {
		payslips[i].Items = byPayslip[payslips[i].ID]
	}
	return payslips, nil
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context, filter payroll.RunFilter) (payroll.ListRunsResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListRunsResponse{}, err
	}
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}

	runs, total, err := s.payrollRepo.ListRuns(ctx, filter)
	if err != nil {
		return payroll.ListRunsResponse{}, err
	}

	resp := payroll.ListRunsResponse{
		Data:       make([]payroll.PayrollRunResponse, 0, len(runs)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, run := range runs {
		resp.Data = append(resp.Data, ToRunResponse(run, nil))
	}
	return resp, nil
}

// ========== ALLOWANCES ==========

// CreateAllowance records a manual allowance picked up by the next payroll
// run for its month.
func (s *PayrollServiceImpl) CreateAllowance(ctx context.Context, req payroll.CreateAllowanceRequest) (payroll.AllowanceResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AllowanceResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return payroll.AllowanceResponse{}, err
	}
	if w.Type != worker.WorkerTypeLocal {
		return payroll.AllowanceResponse{}, payroll.ErrAllowanceNotLocal
	}
	if w.Status != worker.WorkerStatusActive {
		return payroll.AllowanceResponse{}, worker.ErrWorkerInactive
	}

	created, err := s.payrollRepo.CreateAllowance(ctx, payroll.Allowance{
		WorkerID:      w.ID,
		Month:         req.Month,
		Year:          req.Year,
		AllowanceType: req.AllowanceType,
		Description:   req.Description,
		Amount:        req.Amount,
	})
	if err != nil {
		return payroll.AllowanceResponse{}, err
	}

	slog.Info("Allowance created",
		"allowance_id", created.ID,
		"worker_id", created.WorkerID,
		"month", created.Month,
		"year", created.Year,
		"amount", created.Amount.StringFixed(2),
	)

	return ToAllowanceResponse(created), nil
}

func (s *PayrollServiceImpl) ListAllowances(ctx context.Context, filter payroll.AllowanceFilter) ([]payroll.AllowanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	allowances, err := s.payrollRepo.ListAllowances(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.AllowanceResponse, 0, len(allowances))
	for _, a := range allowances {
		resp = append(resp, ToAllowanceResponse(a))
	}
	return resp, nil
}

// ========== MAPPING ==========

func ToRunResponse(run payroll.PayrollRun, payslips []payroll.Payslip) payroll.PayrollRunResponse {
	t := run.Totals
	resp := payroll.PayrollRunResponse{
		ID:         run.ID,
		Month:      run.Month,
		Year:       run.Year,
		WorkerType: string(run.WorkerType),
		CreatedAt:  run.CreatedAt.Format(time.RFC3339),
		Summary: payroll.RunSummaryResponse{
			TotalWorkers:       t.TotalWorkers,
			TotalGrossPay:      t.GrossPay,
			TotalEPFEmployee:   t.EPFEmployee,
			TotalEPFEmployer:   t.EPFEmployer,
			TotalSOCSOEmployee: t.SOCSOEmployee,
			TotalSOCSOEmployer: t.SOCSOEmployer,
			TotalEISEmployee:   t.EISEmployee,
			TotalEISEmployer:   t.EISEmployer,
			TotalPCB:           t.PCB,
			TotalDeductions:    t.TotalDeductions,
			TotalNetPay:        t.NetPay,
		},
	}

	if payslips != nil {
		resp.Payslips = make([]payroll.PayslipResponse, 0, len(payslips))
		for _, p := range payslips {
			resp.Payslips = append(resp.Payslips, ToPayslipResponse(p))
		}
	}
	return resp
}

func ToPayslipResponse(p payroll.Payslip) payroll.PayslipResponse {
	deductions := p.Deductions.ToResponse()
	deductions.TotalDeductions = p.TotalDeductions

	items := make([]payroll.PayslipItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, payroll.PayslipItemResponse{
			ItemType:        string(it.ItemType),
			ItemName:        it.ItemName,
			ItemDescription: it.ItemDescription,
			Amount:          it.Amount,
		})
	}

	return payroll.PayslipResponse{
		ID:                         p.ID,
		WorkerID:                   p.WorkerID,
		WorkerName:                 p.WorkerName,
		WorkerType:                 string(p.WorkerType),
		TotalTons:                  p.TotalTons,
		BaseIncome:                 p.BaseIncome,
		TotalAllowance:             p.TotalAllowance,
		GrossPay:                   p.GrossPay,
		DeductionsResponse:         deductions,
		TotalDeductionNonStatutory: p.TotalDeductionNonStatutory,
		NetPay:                     p.NetPay,
		Items:                      items,
	}
}

func ToAllowanceResponse(a payroll.Allowance) payroll.AllowanceResponse {
	return payroll.AllowanceResponse{
		ID:            a.ID,
		WorkerID:      a.WorkerID,
		Month:         a.Month,
		Year:          a.Year,
		AllowanceType: a.AllowanceType,
		Description:   a.Description,
		Amount:        a.Amount,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

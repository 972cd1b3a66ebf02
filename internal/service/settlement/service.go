package settlement

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/settlement"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/palm-payroll-go/internal/repository/postgresql"
)

const defaultListLimit = 50

type SettlementServiceImpl struct {
	tx             postgresql.Transactor
	settlementRepo settlement.SettlementRepository
	workerRepo     worker.WorkerRepository
	aggregator     worklog.Aggregator
	calculator     statutory.DeductionCalculator
	calendar       *calendar.Calendar
}

func NewSettlementService(
	tx postgresql.Transactor,
	settlementRepo settlement.SettlementRepository,
	workerRepo worker.WorkerRepository,
	aggregator worklog.Aggregator,
	calculator statutory.DeductionCalculator,
	cal *calendar.Calendar,
) settlement.SettlementService {
	return &SettlementServiceImpl{
		tx:             tx,
		settlementRepo: settlementRepo,
		workerRepo:     workerRepo,
		aggregator:     aggregator,
		calculator:     calculator,
		calendar:       cal,
	}
}

// ========== SETTLE ==========

// Settle pays out every log of the worker that no settlement has consumed yet.
// The worker row and the logs are locked for the whole transaction, so two
// concurrent calls for one worker serialise and the second finds nothing left.
func (s *SettlementServiceImpl) Settle(ctx context.Context, req settlement.CreateSettlementRequest) (settlement.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.SettlementResponse{}, err
	}

	settlementDate := s.calendar.Today()
	if req.SettlementDate != nil {
		date, err := calendar.ParseDate(*req.SettlementDate)
		if err != nil {
			return settlement.SettlementResponse{}, err
		}
		if s.calendar.IsFuture(date) {
			return settlement.SettlementResponse{}, settlement.ErrFutureSettlement
		}
		settlementDate = date
	}

	var (
		w       worker.Worker
		created settlement.WorkerSettlement
		links   []settlement.SettlementWorkLog
	)
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		w, err = s.workerRepo.GetActiveByIDForUpdate(txCtx, req.WorkerID)
		if err != nil {
			return err
		}

		agg, err := s.aggregator.Aggregate(txCtx, w.ID, worklog.UnsettledForUpdate())
		if err != nil {
			return err
		}

		b, err := s.calculator.Compute(txCtx, statutory.ProfileOf(w), agg.GrossPay)
		if err != nil {
			return err
		}

		created, err = s.settlementRepo.Create(txCtx, settlement.WorkerSettlement{
			WorkerID:        w.ID,
			SettlementDate:  settlementDate,
			FromDate:        *agg.FromDate,
			ToDate:          *agg.ToDate,
			TotalTons:       agg.TotalTons,
			GrossPay:        agg.GrossPay,
			Deductions:      b,
			TotalDeductions: b.TotalDeductions(),
			NetPay:          b.NetPay(agg.GrossPay),
			PaymentStatus:   settlement.PaymentStatusPending,
			PaymentMethod:   req.PaymentMethod,
			Notes:           req.Notes,
		})
		if err != nil {
			return err
		}

		links = make([]settlement.SettlementWorkLog, 0, len(agg.Logs))
		for _, l := range agg.Logs {
			link, err := s.settlementRepo.LinkWorkLog(txCtx, settlement.SettlementWorkLog{
				SettlementID: created.ID,
				WorkLogID:    l.ID,
				LogDate:      l.LogDate,
				Amount:       l.Amount(),
			})
			if err != nil {
				return err
			}

			tons, rate := l.Tons, l.RatePerTon
			link.Tons, link.RatePerTon, link.CustomerName = &tons, &rate, l.CustomerName
			links = append(links, link)
		}
		return nil
	})
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	slog.Info("Worker settled",
		"settlement_id", created.ID,
		"worker_id", w.ID,
		"work_logs", len(links),
		"gross_pay", created.GrossPay.StringFixed(2),
		"net_pay", created.NetPay.StringFixed(2),
	)

	name, workerType := w.Name, string(w.Type)
	created.WorkerName, created.WorkerType = &name, &workerType
	created.WorkLogsCount = len(links)
	return ToSettlementResponse(created, links), nil
}

// ========== READ ==========

func (s *SettlementServiceImpl) GetSettlement(ctx context.Context, id string) (settlement.SettlementResponse, error) {
	ws, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	links, err := s.settlementRepo.ListLinkedLogs(ctx, ws.ID)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	if links == nil {
		links = []settlement.SettlementWorkLog{}
	}

	return ToSettlementResponse(ws, links), nil
}

func (s *SettlementServiceImpl) ListSettlements(ctx context.Context, filter settlement.ListSettlementsFilter) ([]settlement.SettlementResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if filter.Limit < 1 {
		filter.Limit = defaultListLimit
	}

	settlements, err := s.settlementRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]settlement.SettlementResponse, 0, len(settlements))
	for _, ws := range settlements {
		resp = append(resp, ToSettlementResponse(ws, nil))
	}
	return resp, nil
}

// ========== MAPPING ==========

func ToSettlementResponse(s settlement.WorkerSettlement, links []settlement.SettlementWorkLog) settlement.SettlementResponse {
	deductions := s.Deductions.ToResponse()
	deductions.TotalDeductions = s.TotalDeductions

	resp := settlement.SettlementResponse{
		ID:                 s.ID,
		Worker:             worker.WorkerSummary{ID: s.WorkerID},
		SettlementDate:     calendar.FormatDate(s.SettlementDate),
		FromDate:           calendar.FormatDate(s.FromDate),
		ToDate:             calendar.FormatDate(s.ToDate),
		TotalTons:          s.TotalTons,
		GrossPay:           s.GrossPay,
		DeductionsResponse: deductions,
		NetPay:             s.NetPay,
		PaymentStatus:      string(s.PaymentStatus),
		PaymentMethod:      s.PaymentMethod,
		Notes:              s.Notes,
		WorkLogsCount:      s.WorkLogsCount,
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
	}
	if s.WorkerName != nil {
		resp.Worker.Name = *s.WorkerName
	}
	if s.WorkerType != nil {
		resp.Worker.Type = *s.WorkerType
	}
	if s.PaidAt != nil {
		paidAt := s.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}

	if links != nil {
		resp.WorkLogs = make([]settlement.SettlementWorkLogResponse, 0, len(links))
		for _, l := range links {
			resp.WorkLogs = append(resp.WorkLogs, settlement.SettlementWorkLogResponse{
				WorkLogID:    l.WorkLogID,
				LogDate:      calendar.FormatDate(l.LogDate),
				CustomerName: l.CustomerName,
				Tons:         l.Tons,
				RatePerTon:   l.RatePerTon,
				Amount:       l.Amount,
			})
		}
	}
	return resp
}

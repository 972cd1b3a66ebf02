package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/settlement"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type settlementRepository struct {
	db *database.DB
}

func NewSettlementRepository(db *database.DB) settlement.SettlementRepository {
	return &settlementRepository{db: db}
}

const settlementColumns = `
	s.id, s.worker_id, s.settlement_date, s.from_date, s.to_date, s.total_tons, s.gross_pay,
	s.epf_employee, s.epf_employer, s.socso_employee, s.socso_employer, s.eis_employee, s.eis_employer, s.pcb_mtd,
	s.total_deductions, s.net_pay, s.payment_status, s.payment_method, s.notes, s.created_at, s.paid_at
`

func settlementScanArgs(s *settlement.WorkerSettlement) []interface{} {
	d := &s.Deductions
	return []interface{}{
		&s.ID, &s.WorkerID, &s.SettlementDate, &s.FromDate, &s.ToDate, &s.TotalTons, &s.GrossPay,
		&d.EPFEmployee, &d.EPFEmployer, &d.SOCSOEmployee, &d.SOCSOEmployer, &d.EISEmployee, &d.EISEmployer, &d.PCB,
		&s.TotalDeductions, &s.NetPay, &s.PaymentStatus, &s.PaymentMethod, &s.Notes, &s.CreatedAt, &s.PaidAt,
	}
}

func (r *settlementRepository) Create(ctx context.Context, s settlement.WorkerSettlement) (settlement.WorkerSettlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_settlements AS s (
			worker_id, settlement_date, from_date, to_date, total_tons, gross_pay,
			epf_employee, epf_employer, socso_employee, socso_employer, eis_employee, eis_employer, pcb_mtd,
			total_deductions, net_pay, payment_status, payment_method, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING` + settlementColumns

	d := s.Deductions
	var created settlement.WorkerSettlement
	err := q.QueryRow(ctx, query,
		s.WorkerID, s.SettlementDate, s.FromDate, s.ToDate, s.TotalTons, s.GrossPay,
		d.EPFEmployee, d.EPFEmployer, d.SOCSOEmployee, d.SOCSOEmployer, d.EISEmployee, d.EISEmployer, d.PCB,
		s.TotalDeductions, s.NetPay, string(s.PaymentStatus), s.PaymentMethod, s.Notes,
	).Scan(settlementScanArgs(&created)...)
	if err != nil {
		return settlement.WorkerSettlement{}, fmt.Errorf("failed to create settlement: %w", err)
	}

	return created, nil
}

func (r *settlementRepository) LinkWorkLog(ctx context.Context, link settlement.SettlementWorkLog) (settlement.SettlementWorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settlement_work_logs (settlement_id, work_log_id, log_date, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, settlement_id, work_log_id, log_date, amount
	`

	var l settlement.SettlementWorkLog
	err := q.QueryRow(ctx, query, link.SettlementID, link.WorkLogID, link.LogDate, link.Amount).Scan(
		&l.ID, &l.SettlementID, &l.WorkLogID, &l.LogDate, &l.Amount,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "uk_settlement_work_logs_work_log" {
			return settlement.SettlementWorkLog{}, worklog.ErrWorkLogAlreadySettled
		}
		return settlement.SettlementWorkLog{}, fmt.Errorf("failed to link work log: %w", err)
	}

	return l, nil
}

func (r *settlementRepository) GetByID(ctx context.Context, id string) (settlement.WorkerSettlement, error) {
	if !validator.IsUUID(id) {
		return settlement.WorkerSettlement{}, settlement.ErrSettlementNotFound
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + settlementColumns + `, w.name, w.type,
			(SELECT COUNT(*) FROM settlement_work_logs swl WHERE swl.settlement_id = s.id)
		FROM worker_settlements s
		LEFT JOIN workers w ON w.id = s.worker_id
		WHERE s.id = $1
	`

	var s settlement.WorkerSettlement
	args := append(settlementScanArgs(&s), &s.WorkerName, &s.WorkerType, &s.WorkLogsCount)
	if err := q.QueryRow(ctx, query, id).Scan(args...); err != nil {
		if err == pgx.ErrNoRows {
			return settlement.WorkerSettlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.WorkerSettlement{}, fmt.Errorf("failed to get settlement: %w", err)
	}

	return s, nil
}

func (r *settlementRepository) ListLinkedLogs(ctx context.Context, settlementID string) ([]settlement.SettlementWorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT swl.id, swl.settlement_id, swl.work_log_id, swl.log_date, swl.amount,
			   wl.tons, wl.rate_per_ton, c.name
		FROM settlement_work_logs swl
		LEFT JOIN work_logs wl ON wl.id = swl.work_log_id
		LEFT JOIN customers c ON c.id = wl.customer_id
		WHERE swl.settlement_id = $1
		ORDER BY swl.log_date ASC, swl.work_log_id ASC
	`

	rows, err := q.Query(ctx, query, settlementID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlement work logs: %w", err)
	}
	defer rows.Close()

	var links []settlement.SettlementWorkLog
	for rows.Next() {
		var l settlement.SettlementWorkLog
		if err := rows.Scan(
			&l.ID, &l.SettlementID, &l.WorkLogID, &l.LogDate, &l.Amount,
			&l.Tons, &l.RatePerTon, &l.CustomerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement work log: %w", err)
		}
		links = append(links, l)
	}

	return links, rows.Err()
}

func (r *settlementRepository) List(ctx context.Context, filter settlement.ListSettlementsFilter) ([]settlement.WorkerSettlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + settlementColumns + `, w.name, w.type, COUNT(swl.id)
		FROM worker_settlements s
		LEFT JOIN workers w ON w.id = s.worker_id
		LEFT JOIN settlement_work_logs swl ON swl.settlement_id = s.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil {
		query += fmt.Sprintf(" AND s.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND s.payment_status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query += fmt.Sprintf(" GROUP BY s.id, w.name, w.type ORDER BY s.created_at DESC LIMIT $%d", argIdx)
	args = append(args, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []settlement.WorkerSettlement
	for rows.Next() {
		var s settlement.WorkerSettlement
		scanArgs := append(settlementScanArgs(&s), &s.WorkerName, &s.WorkerType, &s.WorkLogsCount)
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, rows.Err()
}
